package course

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
	}{
		{
			name: "id and title only",
			line: "CS100,Foundations",
			want: Record{ID: "CS100", Title: "Foundations", Prerequisites: []string{}},
		},
		{
			name: "surrounding spaces and tabs",
			line: " \tCS101 , Intro to CS\t,  CS100 ",
			want: Record{ID: "CS101", Title: "Intro to CS", Prerequisites: []string{"CS100"}},
		},
		{
			name: "prerequisites keep file order",
			line: "CS300,Algorithms,CS200,MATH201,CS100",
			want: Record{ID: "CS300", Title: "Algorithms", Prerequisites: []string{"CS200", "MATH201", "CS100"}},
		},
		{
			name: "internal whitespace preserved",
			line: "CS 400 ,  Operating   Systems ",
			want: Record{ID: "CS 400", Title: "Operating   Systems", Prerequisites: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLine(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseLine_Invalid(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"CS100",
		"CS100,",
		"CS100,  \t ",
		", NoId",
		" ,Title,CS100",
		",",
	}

	for _, line := range lines {
		rec, err := ParseLine(line)
		if !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("ParseLine(%q): expected ErrInvalidRecord, got %v", line, err)
		}
		if rec.ID != "" || rec.Title != "" {
			t.Errorf("ParseLine(%q): expected zero record on failure, got %+v", line, rec)
		}
	}
}

func TestParseFields(t *testing.T) {
	got, err := ParseFields([]string{"CS101", "Intro, Part 1", "CS100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Intro, Part 1" {
		t.Errorf("expected comma inside a field to survive, got %q", got.Title)
	}

	if _, err := ParseFields(nil); !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord for no fields, got %v", err)
	}
}

func TestRecord_HasPrerequisites(t *testing.T) {
	withPrereq, _ := ParseLine("CS101,Intro to CS,CS100")
	without, _ := ParseLine("CS100,Foundations")

	if !withPrereq.HasPrerequisites() {
		t.Errorf("expected CS101 to report prerequisites")
	}
	if without.HasPrerequisites() {
		t.Errorf("expected CS100 to report no prerequisites")
	}
}

func TestRecord_Clone(t *testing.T) {
	orig := Record{ID: "CS101", Title: "Intro", Prerequisites: []string{"CS100"}}
	c := orig.Clone()
	c.Prerequisites[0] = "changed"

	if orig.Prerequisites[0] != "CS100" {
		t.Errorf("Clone shares prerequisite storage with the original")
	}
}
