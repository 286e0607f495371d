package catalog

import (
	"errors"
	"testing"

	"courseplanner/pkg/course"

	"github.com/google/go-cmp/cmp"
)

func records(t *testing.T, lines ...string) []course.Record {
	t.Helper()
	var out []course.Record
	for _, l := range lines {
		r, err := course.ParseLine(l)
		if err != nil {
			t.Fatalf("bad fixture line %q: %v", l, err)
		}
		out = append(out, r)
	}
	return out
}

func ids(recs []course.Record) []string {
	var out []string
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func TestCatalog_ListSorted(t *testing.T) {
	c := New(records(t,
		"CSCI300,Algorithms,CSCI200",
		"MATH201,Discrete Mathematics",
		"CSCI100,Intro to CS",
		"CSCI200,Data Structures,CSCI101",
		"Csci150,Lowercase sorts after uppercase",
	))

	want := []string{"CSCI100", "CSCI200", "CSCI300", "Csci150", "MATH201"}
	if diff := cmp.Diff(want, ids(c.List())); diff != "" {
		t.Errorf("List order mismatch (-want +got):\n%s", diff)
	}

	// The stored order must survive listing.
	wantStored := []string{"CSCI300", "MATH201", "CSCI100", "CSCI200", "Csci150"}
	if diff := cmp.Diff(wantStored, ids(c.Courses())); diff != "" {
		t.Errorf("List mutated insertion order (-want +got):\n%s", diff)
	}

	// Listing twice yields the same result.
	if diff := cmp.Diff(c.List(), c.List()); diff != "" {
		t.Errorf("repeated List differs:\n%s", diff)
	}
}

func TestCatalog_ListStableForDuplicates(t *testing.T) {
	c := New(records(t,
		"B,Second",
		"A,First copy",
		"B,Second copy",
		"A,First",
	))

	var titles []string
	for _, r := range c.List() {
		titles = append(titles, r.Title)
	}

	want := []string{"First copy", "First", "Second", "Second copy"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("duplicates not kept in load order (-want +got):\n%s", diff)
	}
}

func TestCatalog_FindExactMatch(t *testing.T) {
	c := New(records(t,
		"CS101,Intro to CS,CS100",
		"CS100,Foundations",
		"CS101,Shadowed duplicate",
	))

	got, err := c.Find("CS101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := course.Record{ID: "CS101", Title: "Intro to CS", Prerequisites: []string{"CS100"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Find returned wrong record (-want +got):\n%s", diff)
	}

	for _, q := range []string{"cs101", " CS101", "CS101 ", "CS10", ""} {
		if _, err := c.Find(q); !errors.Is(err, ErrNotFound) {
			t.Errorf("Find(%q): expected ErrNotFound, got %v", q, err)
		}
	}
}

func TestCatalog_FindReturnsCopy(t *testing.T) {
	c := New(records(t, "CS101,Intro to CS,CS100"))

	got, _ := c.Find("CS101")
	got.Prerequisites[0] = "tampered"

	again, _ := c.Find("CS101")
	if again.Prerequisites[0] != "CS100" {
		t.Errorf("catalog record was mutated through a returned copy")
	}
}

func TestCatalog_IDs(t *testing.T) {
	c := New(records(t, "B,b", "A,a", "B,b again"))
	if diff := cmp.Diff([]string{"A", "B"}, c.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_Empty(t *testing.T) {
	var nilCat *Catalog
	if !nilCat.Empty() || nilCat.Len() != 0 {
		t.Errorf("nil catalog should be empty")
	}
	if !New(nil).Empty() {
		t.Errorf("new catalog without records should be empty")
	}
	if len(New(nil).List()) != 0 {
		t.Errorf("expected empty list")
	}
}
