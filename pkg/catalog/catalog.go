package catalog

import (
	"errors"
	"fmt"
	"sort"

	"courseplanner/pkg/course"
)

var (
	// ErrUnreadableSource is returned when a catalog source cannot be opened or read.
	ErrUnreadableSource = errors.New("catalog source unreadable")
	// ErrNotFound is returned when no course matches a lookup.
	ErrNotFound = errors.New("course not found")
	// ErrEmptyCatalog is returned when a query runs before any course was loaded.
	ErrEmptyCatalog = errors.New("no data loaded")
)

// Catalog holds course records in the order they were loaded.
type Catalog struct {
	courses []course.Record
}

// New returns a catalog holding copies of records, in the given order.
func New(records []course.Record) *Catalog {
	c := &Catalog{courses: make([]course.Record, 0, len(records))}
	for _, r := range records {
		c.courses = append(c.courses, r.Clone())
	}
	return c
}

// Len returns the number of courses, duplicates included.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.courses)
}

// Empty reports whether the catalog holds no courses.
func (c *Catalog) Empty() bool {
	return c.Len() == 0
}

// Courses returns the records in load order.
func (c *Catalog) Courses() []course.Record {
	if c == nil {
		return nil
	}
	out := make([]course.Record, 0, len(c.courses))
	for _, r := range c.courses {
		out = append(out, r.Clone())
	}
	return out
}

// List returns every course sorted by identifier. Courses sharing an
// identifier stay in load order. The catalog itself is left untouched.
func (c *Catalog) List() []course.Record {
	out := c.Courses()
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns the distinct identifiers in sorted order.
func (c *Catalog) IDs() []string {
	var ids []string
	for _, r := range c.List() {
		if len(ids) > 0 && ids[len(ids)-1] == r.ID {
			continue
		}
		ids = append(ids, r.ID)
	}
	return ids
}

// Find returns the first course, in load order, whose identifier equals id.
// The comparison is exact: no trimming and no case folding.
func (c *Catalog) Find(id string) (course.Record, error) {
	if c != nil {
		for _, r := range c.courses {
			if r.ID == id {
				return r.Clone(), nil
			}
		}
	}
	return course.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
