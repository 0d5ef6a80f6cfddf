// Package scanner supplies image references for new scans. The document
// store only ever sees the returned reference, never the image itself.
package scanner

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dmitrijs2005/smartscan/internal/common"
)

// Capturer produces an image reference from a capture source.
type Capturer interface {
	Capture(ctx context.Context, source string) (string, error)
}

// ImageExtensions lists the file extensions FileCapturer accepts.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".heic", ".webp", ".tif", ".tiff"}

// FileCapturer treats an existing local image file as the captured photo
// and returns its file:// URI.
type FileCapturer struct{}

func NewFileCapturer() *FileCapturer {
	return &FileCapturer{}
}

func (c *FileCapturer) Capture(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := strings.TrimSpace(source)
	if path == "" {
		return "", fmt.Errorf("%w: image path is required", common.ErrorInvalidInput)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(ImageExtensions, ext) {
		return "", fmt.Errorf("%w: %q is not a supported image type", common.ErrorInvalidInput, ext)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	fi, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}
	if !fi.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", common.ErrorInvalidInput, abs)
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}
