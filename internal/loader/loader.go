// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/ctromutil/internal/rom"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the whole file into memory and returns the ROM image for it.
// A missing or unreadable file results in an error that wraps the
// underlying file system error.
func (l *Loader) Load(path string) (*rom.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file %s: %w", path, err)
	}
	return rom.New(data), nil
}

// LoadPair loads the two ROM files of a comparison.
func (l *Loader) LoadPair(original, modified string) (*rom.Image, *rom.Image, error) {
	a, err := l.Load(original)
	if err != nil {
		return nil, nil, err
	}
	b, err := l.Load(modified)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
