package course

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates the fields of a catalog line.
const Delimiter = ","

// ErrInvalidRecord is returned when a line lacks an identifier or a title.
var ErrInvalidRecord = errors.New("invalid record")

// Record is a single course entry from the catalog.
type Record struct {
	ID            string
	Title         string
	Prerequisites []string // identifiers of other courses, in file order
}

// HasPrerequisites reports whether the course lists any prerequisites.
func (r Record) HasPrerequisites() bool {
	return len(r.Prerequisites) > 0
}

// Clone returns a copy that shares no memory with r.
func (r Record) Clone() Record {
	prereqs := make([]string, len(r.Prerequisites))
	copy(prereqs, r.Prerequisites)
	r.Prerequisites = prereqs
	return r
}

// ParseLine parses one line of the form "id,title[,prereq]*".
func ParseLine(line string) (Record, error) {
	return ParseFields(strings.Split(line, Delimiter))
}

// ParseFields builds a Record from already separated fields.
// The first field is the identifier, the second the title and every further
// field one prerequisite. Spaces and tabs around each field are dropped.
func ParseFields(fields []string) (Record, error) {
	var id, title string
	if len(fields) > 0 {
		id = trimField(fields[0])
	}
	if len(fields) > 1 {
		title = trimField(fields[1])
	}

	if id == "" {
		return Record{}, fmt.Errorf("%w: missing course identifier", ErrInvalidRecord)
	}
	if title == "" {
		return Record{}, fmt.Errorf("%w: missing title for course %s", ErrInvalidRecord, id)
	}

	prereqs := make([]string, 0, max(len(fields)-2, 0))
	for _, f := range fields[min(len(fields), 2):] {
		prereqs = append(prereqs, trimField(f))
	}

	return Record{
		ID:            id,
		Title:         title,
		Prerequisites: prereqs,
	}, nil
}

// trimField strips horizontal whitespace only; internal spacing is kept.
func trimField(s string) string {
	return strings.Trim(s, " \t")
}
