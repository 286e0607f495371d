package tui

import (
	"bytes"
	"strings"
	"testing"

	"courseplanner/pkg/catalog"
	"courseplanner/pkg/course"
)

func TestWriteCourse_WithPrerequisites(t *testing.T) {
	var buf bytes.Buffer
	WriteCourse(&buf, course.Record{ID: "CS300", Title: "Algorithms", Prerequisites: []string{"CS200", "MATH201"}})

	want := "Course Number: CS300\nCourse Title: Algorithms\nPrerequisites:\n- CS200\n- MATH201\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", buf.String(), want)
	}
}

func TestWriteCourse_NoPrerequisites(t *testing.T) {
	var buf bytes.Buffer
	WriteCourse(&buf, course.Record{ID: "CS100", Title: "Foundations", Prerequisites: []string{}})

	out := buf.String()
	if !strings.Contains(out, "No prerequisites.") {
		t.Errorf("expected 'No prerequisites.' marker, got:\n%s", out)
	}
	if strings.Contains(out, "Prerequisites:") {
		t.Errorf("did not expect an itemized prerequisite header, got:\n%s", out)
	}
}

func TestWriteCourseList(t *testing.T) {
	var buf bytes.Buffer
	WriteCourseList(&buf, []course.Record{
		{ID: "CS100", Title: "Foundations"},
		{ID: "CS101", Title: "Intro to CS"},
	})

	out := buf.String()
	if !strings.Contains(out, msgListHead) {
		t.Errorf("expected list heading, got:\n%s", out)
	}
	first := strings.Index(out, "CS100, Foundations\n")
	second := strings.Index(out, "CS101, Intro to CS\n")
	if first < 0 || second < 0 || first > second {
		t.Errorf("courses missing or out of order:\n%s", out)
	}
}

func TestWriteLoadSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteLoadSummary(&buf, &catalog.LoadResult{Source: "courses.txt", Loaded: 1, Skipped: 3})

	if !strings.Contains(buf.String(), "1 course loaded, 3 lines skipped.") {
		t.Errorf("unexpected summary:\n%s", buf.String())
	}
}

func TestValidateColor(t *testing.T) {
	for _, ok := range []string{"0", "99", "255", "#FF00ff"} {
		if err := ValidateColor(ok); err != nil {
			t.Errorf("ValidateColor(%q) unexpected error: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "256", "-1", "+5", "#FFF", "#GG0000", "purple"} {
		if err := ValidateColor(bad); err == nil {
			t.Errorf("ValidateColor(%q) expected error", bad)
		}
	}
}
