package scanner

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/karrick/godirwalk"
	ignore "github.com/sabhiram/go-gitignore"
)

// Walk captures every image file below dir, in lexical order. Paths
// relative to dir that match one of the gitignore-style exclude patterns are
// skipped; an excluded directory is not descended into.
func (c *FileCapturer) Walk(ctx context.Context, dir string, exclude []string) ([]string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	matcher, err := ignore.CompileIgnoreLines(exclude...)
	if err != nil {
		return nil, fmt.Errorf("compile exclude patterns: %w", err)
	}

	var refs []string
	err = godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if path == root {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			if de.IsDir() {
				if matcher.MatchesPath(rel + "/") {
					return filepath.SkipDir
				}
				return nil
			}
			if !de.IsRegular() || matcher.MatchesPath(rel) {
				return nil
			}
			if !slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(path))) {
				return nil
			}

			ref, err := c.Capture(ctx, path)
			if err != nil {
				return err
			}
			refs = append(refs, ref)
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return refs, nil
}
