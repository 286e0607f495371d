package tui

import (
	"fmt"
	"io"

	"courseplanner/pkg/catalog"
	"courseplanner/pkg/course"
)

const (
	msgNoData   = "No data loaded. Please load the data first."
	msgListHead = "Here is a sample schedule:"
)

// WriteCourseList prints every course as "ID, Title", one per line.
func WriteCourseList(w io.Writer, courses []course.Record) {
	fmt.Fprintln(w, accentStyle.Render(msgListHead))
	fmt.Fprintln(w)
	for _, c := range courses {
		fmt.Fprintf(w, "%s, %s\n", c.ID, c.Title)
	}
}

// WriteCourse prints the details of a single course.
func WriteCourse(w io.Writer, c course.Record) {
	fmt.Fprintf(w, "Course Number: %s\n", c.ID)
	fmt.Fprintf(w, "Course Title: %s\n", c.Title)

	if !c.HasPrerequisites() {
		fmt.Fprintln(w, "No prerequisites.")
		return
	}

	fmt.Fprintln(w, "Prerequisites:")
	for _, p := range c.Prerequisites {
		fmt.Fprintf(w, "- %s\n", p)
	}
}

// WriteLoadSummary reports how many lines of a source were used.
func WriteLoadSummary(w io.Writer, res *catalog.LoadResult) {
	fmt.Fprintln(w, accentStyle.Render(fmt.Sprintf("Data loaded successfully from %s", res.Source)))
	fmt.Fprintf(w, "%d %s loaded, %d %s skipped.\n",
		res.Loaded, plural(res.Loaded, "course", "courses"),
		res.Skipped, plural(res.Skipped, "line", "lines"),
	)
}

// WriteNotFound reports a lookup miss.
func WriteNotFound(w io.Writer, id string) {
	fmt.Fprintf(w, "Course %s not found in the course list.\n", id)
}

// WriteNoData tells the user to load a catalog first.
func WriteNoData(w io.Writer) {
	fmt.Fprintln(w, errorStyle.Render(msgNoData))
}

// WriteLoadError reports a catalog that could not be opened.
func WriteLoadError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Error: File not found or cannot be opened (%v)", err)))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
