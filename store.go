package stockfolio

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store persists one portfolio as a single JSON blob on disk.
type Store struct {
	// Path of the portfolio file, e.g. "~/.stockfolio/portfolio.json".
	Path string
}

// NewStore returns a store bound to path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the portfolio blob from disk.
//
// A missing file is not an error: the caller gets a freshly seeded default
// portfolio. A file that exists but cannot be decoded is also survivable, the
// unreadable blob is kept aside as "<path>.corrupt" and a seeded default
// portfolio is returned, so a damaged file never bricks the tool.
func (s *Store) Load() (*Portfolio, error) {
	f, err := os.Open(s.Path)
	if os.IsNotExist(err) {
		return DefaultPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", s.Path, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		log.Printf("portfolio file %q is unreadable (%v), starting over with sample data", s.Path, err)
		if renameErr := os.Rename(s.Path, s.Path+".corrupt"); renameErr != nil {
			log.Printf("could not set aside corrupt portfolio file: %v", renameErr)
		}
		return DefaultPortfolio(), nil
	}
	return p, nil
}

// Save writes the portfolio blob to disk, atomically: the blob is written to
// a temporary sibling file first and renamed over the target, so a crash
// mid-write never leaves a half-written portfolio behind.
func (s *Store) Save(p *Portfolio) error {
	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create portfolio directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary portfolio file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write portfolio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not close portfolio file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace portfolio file %q: %w", s.Path, err)
	}
	return nil
}
