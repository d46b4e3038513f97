// To handle all registry file interactions. This is our
// data access layer, keeping the JSON format separate from business logic.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Paul-16098/get-book/internal/models"
	"github.com/Paul-16098/get-book/internal/util"
)

// ErrCorruptData is returned when the registry file exists but is not valid
// JSON. The file is never silently replaced with an empty registry: callers
// must abort so the broken data can be inspected instead of overwritten.
var ErrCorruptData = errors.New("registry data is corrupt")

// Store provides all functions to interact with the book registry.
// The JSON file on disk is the sole source of truth; the in-memory map is
// flushed back to it after every insert.
type Store struct {
	path    string
	baseURL string
	books   map[string]*models.Book
}

// Open loads the registry file at path. A missing file is created as an
// empty registry immediately, so a first run leaves a valid file behind.
func Open(path, baseURL string) (*Store, error) {
	s := &Store{
		path:    path,
		baseURL: strings.TrimRight(baseURL, "/"),
		books:   make(map[string]*models.Book),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.Persist(); err != nil {
				return nil, fmt.Errorf("failed to create registry file: %w", err)
			}
			return s, nil
		}
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	if err := json.Unmarshal(data, &s.books); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, path, err)
	}

	// Map keys are authoritative: a record whose title drifted from its key
	// (hand-edited file) is realigned to the key.
	for title, book := range s.books {
		if book.Title != title {
			book.Title = title
		}
	}

	return s, nil
}

// Get returns the record for title, if present. It never mutates the
// registry or touches the disk.
func (s *Store) Get(title string) (*models.Book, bool) {
	book, ok := s.books[title]
	return book, ok
}

// LookupOrCreate finds a book by title or creates it if it doesn't exist.
// On a hit the stored record is returned unchanged and nothing is written.
// On a miss the new record is inserted and the whole registry is persisted
// before returning, so the URL handed back is already durable.
func (s *Store) LookupOrCreate(title string) (*models.Book, bool, error) {
	if book, ok := s.books[title]; ok {
		return book, false, nil
	}

	book := &models.Book{
		Title:   title,
		Slug:    util.Slugify(title),
		AddedAt: time.Now(),
	}
	book.URL = s.BookURL(book.Slug)
	s.books[title] = book

	if err := s.Persist(); err != nil {
		// The insert is not durable; drop it so memory and disk agree.
		delete(s.books, title)
		return nil, false, fmt.Errorf("failed to persist registry: %w", err)
	}

	return book, true, nil
}

// BookURL builds the generated URL for a slug. Same slug, same URL, always.
func (s *Store) BookURL(slug string) string {
	return s.baseURL + "/" + url.PathEscape(slug)
}

// Len returns the number of registered books.
func (s *Store) Len() int {
	return len(s.books)
}

// Persist serializes the full registry to the JSON file, overwriting it.
// The document is written to a temp file in the same directory and renamed
// into place, so a failure mid-write never leaves a truncated registry.
func (s *Store) Persist() error {
	data, err := json.MarshalIndent(s.books, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".books-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
