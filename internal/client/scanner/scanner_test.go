package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/smartscan/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCapturer_ReturnsFileURI(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "scan.JPG")
	require.NoError(t, os.WriteFile(p, []byte{0xff, 0xd8}, 0o600))

	ref, err := NewFileCapturer().Capture(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "file://"), ref)
	assert.True(t, strings.HasSuffix(ref, "/scan.JPG"), ref)
}

func TestFileCapturer_Rejects(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))
	folder := filepath.Join(dir, "album.png")
	require.NoError(t, os.Mkdir(folder, 0o700))

	c := NewFileCapturer()
	ctx := context.Background()

	_, err := c.Capture(ctx, "  ")
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = c.Capture(ctx, txt)
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = c.Capture(ctx, folder)
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = c.Capture(ctx, filepath.Join(dir, "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileCapturer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFileCapturer().Capture(ctx, "x.png")
	require.ErrorIs(t, err, context.Canceled)
}
