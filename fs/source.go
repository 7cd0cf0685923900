// Package fs provides file-based document sources.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/smyth"
)

// Ensure Source implements smyth.DocumentSource at compile time.
var _ smyth.DocumentSource = (*Source)(nil)

// Source reads every file in a single directory.
// Subdirectories are skipped; nothing is read recursively.
type Source struct {
	dir string
}

// NewSource creates a new Source that reads from dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Dir returns the directory the source reads from.
func (s *Source) Dir() string {
	return s.dir
}

// Documents reads the directory's files in name order.
func (s *Source) Documents(ctx context.Context) ([]*smyth.Document, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, smyth.Errorf(smyth.ENOTFOUND, "directory %q not found", s.dir)
	} else if err != nil {
		return nil, err
	}

	docs := make([]*smyth.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		docs = append(docs, &smyth.Document{
			Name:    entry.Name(),
			Content: content,
			Hash:    ComputeHash(content),
		})
	}

	return docs, nil
}

// ComputeHash returns the hex xxhash digest of content.
func ComputeHash(content []byte) string {
	return strconv.FormatUint(xxhash.Sum64(content), 16)
}
