package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"courseplanner/pkg/course"

	"go.uber.org/zap"
)

// LoadResult describes the outcome of reading one catalog source.
type LoadResult struct {
	Source  string
	Catalog *Catalog
	Loaded  int // records accepted
	Skipped int // lines rejected by the parser
}

// Loader reads catalog sources and reports rejected lines to its logger.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a loader. A nil logger discards diagnostics.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Load reads the catalog at path using a loader without diagnostics.
func Load(path string) (*LoadResult, error) {
	return NewLoader(nil).Load(path)
}

// Load reads every record from the source at path into a new catalog.
// Lines that fail to parse are counted and skipped. If the source cannot be
// opened or read, the result holds an empty catalog and the error wraps
// ErrUnreadableSource.
func (l *Loader) Load(path string) (*LoadResult, error) {
	empty := &LoadResult{Source: path, Catalog: New(nil)}

	f, err := os.Open(path)
	if err != nil {
		return empty, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}
	defer f.Close()

	var res *LoadResult
	if isHTML(path) {
		res, err = l.readHTML(path, f)
	} else {
		res, err = l.readLines(path, f)
	}
	if err != nil {
		return empty, fmt.Errorf("%w: failed to read %s: %w", ErrUnreadableSource, path, err)
	}

	l.log.Debug("catalog loaded",
		zap.String("source", path),
		zap.Int("loaded", res.Loaded),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

func (l *Loader) readLines(path string, r io.Reader) (*LoadResult, error) {
	br := bufio.NewReader(r)
	b := newBuilder(path, "line", l.log)

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		// A trailing newline does not start another (empty) line.
		if errors.Is(err, io.EOF) && line == "" {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		rec, perr := course.ParseLine(line)
		b.add(lineNo, rec, perr)

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return b.result(), nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// builder accumulates parsed records for one load.
type builder struct {
	source  string
	posKey  string // log field naming the position unit, "line" or "row"
	log     *zap.Logger
	records []course.Record
	skipped int
}

func newBuilder(source, posKey string, log *zap.Logger) *builder {
	return &builder{source: source, posKey: posKey, log: log}
}

func (b *builder) add(pos int, rec course.Record, err error) {
	if err != nil {
		b.skipped++
		b.log.Warn("skipping invalid catalog entry",
			zap.String("source", b.source),
			zap.Int(b.posKey, pos),
			zap.Error(err),
		)
		return
	}
	b.records = append(b.records, rec)
}

func (b *builder) result() *LoadResult {
	return &LoadResult{
		Source:  b.source,
		Catalog: New(b.records),
		Loaded:  len(b.records),
		Skipped: b.skipped,
	}
}
