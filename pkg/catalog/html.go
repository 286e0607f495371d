package catalog

import (
	"io"
	"strings"

	"courseplanner/pkg/course"

	"github.com/PuerkitoBio/goquery"
)

// readHTML treats every table row with data cells as one catalog record.
// The cells are used as fields directly, so titles may contain commas.
// Header rows (only <th> cells) are not counted, and skipped rows are
// reported by their position among the data rows.
func (l *Loader) readHTML(path string, r io.Reader) (*LoadResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	b := newBuilder(path, "row", l.log)
	dataRow := 0

	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		dataRow++

		fields := make([]string, 0, cells.Length())
		cells.Each(func(j int, cell *goquery.Selection) {
			fields = append(fields, strings.TrimSpace(cell.Text()))
		})

		rec, perr := course.ParseFields(fields)
		b.add(dataRow, rec, perr)
	})

	return b.result(), nil
}
