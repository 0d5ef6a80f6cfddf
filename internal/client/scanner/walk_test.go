package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rel string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o700))
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
}

func baseNames(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r[strings.LastIndex(r, "/")+1:])
	}
	return out
}

func TestWalk_FindsImagesInOrder(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "b.png")
	touch(t, root, "a.jpg")
	touch(t, root, "notes.txt")
	touch(t, root, "2023/c.HEIC")

	refs, err := NewFileCapturer().Walk(context.Background(), root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"c.HEIC", "a.jpg", "b.png"}, baseNames(refs))
	for _, r := range refs {
		assert.True(t, strings.HasPrefix(r, "file://"), r)
	}
}

func TestWalk_Exclude(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "keep.png")
	touch(t, root, "raw/skip.png")
	touch(t, root, "scan.tif")

	refs, err := NewFileCapturer().Walk(context.Background(), root, []string{"raw/", "*.tif"})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.png"}, baseNames(refs))
}

func TestWalk_MissingDir(t *testing.T) {
	_, err := NewFileCapturer().Walk(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
}

func TestWalk_CancelledContext(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileCapturer().Walk(ctx, root, nil)
	require.ErrorIs(t, err, context.Canceled)
}
