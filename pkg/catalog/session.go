package catalog

import (
	"courseplanner/pkg/course"
)

// Session holds the catalog a user is currently working with.
// It starts empty and is replaced wholesale by every successful load.
type Session struct {
	loader  *Loader
	current *Catalog
	source  string
}

// NewSession creates an empty session that loads through loader.
// A nil loader uses one without diagnostics.
func NewSession(loader *Loader) *Session {
	if loader == nil {
		loader = NewLoader(nil)
	}
	return &Session{loader: loader, current: New(nil)}
}

// Load replaces the held catalog with the contents of path, even when every
// line was rejected. If the source is unreadable the previous catalog is kept
// and the error is returned.
func (s *Session) Load(path string) (*LoadResult, error) {
	res, err := s.loader.Load(path)
	if err != nil {
		return res, err
	}
	s.current = res.Catalog
	s.source = path
	return res, nil
}

// Loaded reports whether the session holds at least one course.
func (s *Session) Loaded() bool {
	return !s.current.Empty()
}

// Catalog returns the held catalog, possibly empty.
func (s *Session) Catalog() *Catalog {
	return s.current
}

// Source returns the path of the last successful load.
func (s *Session) Source() string {
	return s.source
}

// List returns all courses sorted by identifier, or ErrEmptyCatalog.
func (s *Session) List() ([]course.Record, error) {
	if !s.Loaded() {
		return nil, ErrEmptyCatalog
	}
	return s.current.List(), nil
}

// Find looks up a course by exact identifier, or returns ErrEmptyCatalog
// when nothing is loaded.
func (s *Session) Find(id string) (course.Record, error) {
	if !s.Loaded() {
		return course.Record{}, ErrEmptyCatalog
	}
	return s.current.Find(id)
}
