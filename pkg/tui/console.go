package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"courseplanner/pkg/catalog"
)

const (
	optionLoad  = 1
	optionList  = 2
	optionPrint = 3
	optionExit  = 9
)

// Console runs the classic numbered menu over plain reader/writer streams.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	session *catalog.Session

	// OnLoad, if set, is called after every successful load.
	OnLoad func(res *catalog.LoadResult)
}

// NewConsole creates a console menu bound to session.
func NewConsole(in io.Reader, out io.Writer, session *catalog.Session) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		session: session,
	}
}

// Run shows the menu until the user picks Exit or input ends.
// Nothing the user does inside the loop is fatal; only I/O errors on the
// input stream are returned.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, "Welcome to the course planner.")

	for {
		c.printMenu()
		fmt.Fprint(c.out, "What would you like to do? ")

		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}

		option, convErr := parseOption(line)
		if convErr != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a valid number.")
			continue
		}

		switch option {
		case optionLoad:
			if err := c.load(); err != nil {
				return err
			}
		case optionList:
			c.list()
		case optionPrint:
			if err := c.print(); err != nil {
				return err
			}
		case optionExit:
			fmt.Fprintln(c.out, "Thank you for using the course planner!")
			return nil
		default:
			fmt.Fprintf(c.out, "%d is not a valid option.\n", option)
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "1. Load Data Structure.")
	fmt.Fprintln(c.out, "2. Print Course List.")
	fmt.Fprintln(c.out, "3. Print Course.")
	fmt.Fprintln(c.out, "9. Exit")
	fmt.Fprintln(c.out)
}

func (c *Console) load() error {
	fmt.Fprint(c.out, "Enter the filename: ")
	path, err := c.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	path = strings.TrimSpace(path)

	res, err := c.session.Load(path)
	if err != nil {
		WriteLoadError(c.out, err)
		return nil
	}

	WriteLoadSummary(c.out, res)
	if c.OnLoad != nil {
		c.OnLoad(res)
	}
	return nil
}

func (c *Console) list() {
	courses, err := c.session.List()
	if err != nil {
		WriteNoData(c.out)
		return
	}
	WriteCourseList(c.out, courses)
}

func (c *Console) print() error {
	if !c.session.Loaded() {
		WriteNoData(c.out)
		return nil
	}

	fmt.Fprint(c.out, "What course do you want to know about? ")
	id, err := c.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	id = strings.TrimSpace(id)

	rec, err := c.session.Find(id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		WriteNotFound(c.out, id)
	case errors.Is(err, catalog.ErrEmptyCatalog):
		WriteNoData(c.out)
	case err == nil:
		WriteCourse(c.out, rec)
	}
	return nil
}

// parseOption reads the number at the start of line, ignoring leading
// whitespace and anything after the digits ("1abc" and "1 2" both select 1).
func parseOption(line string) (int, error) {
	s := strings.TrimLeft(line, " \t")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("no number at start of %q", line)
	}
	return strconv.Atoi(s[:end])
}

// readLine returns the next input line without its terminator. io.EOF is
// only returned when no characters were read.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
