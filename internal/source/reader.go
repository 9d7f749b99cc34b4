// Package source loads the single input file and checks its path against the
// configured source patterns.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

var (
	// ErrFileNotFound indicates the input path does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrRead indicates the input path exists but its contents could not be
	// read as UTF-8 text
	ErrRead = errors.New("error reading file")
)

// File is a loaded source file.
type File struct {
	// Path is the absolute path of the file.
	Path string

	// Content is the file's bytes, guaranteed to be valid UTF-8.
	Content []byte
}

// Load reads the file at path.
func Load(path string) (*File, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrRead, path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w %s: %v", ErrRead, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w %s: is a directory", ErrRead, path)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrRead, path, err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w %s: content is not valid UTF-8", ErrRead, path)
	}

	return &File{
		Path:    absPath,
		Content: content,
	}, nil
}
