// Package sheet imports deals from the curated spreadsheet's CSV export.
//
// The CSV export carries the editors' categories and both prices, but not
// the cell hyperlinks, so every imported deal gets a search URL built from
// its title.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"dealsync/internal/model"
	"dealsync/internal/normalize"
)

const timeLayout = "2006-01-02T15:04:05Z"

// Column headers expected in the export.
const (
	colMain          = "Main Category"
	colSub           = "Sub Category"
	colTitle         = "Item / Product"
	colSalePrice     = "Sale Price"
	colOriginalPrice = "Original Price"
	colStore         = "Store"
	colSalePeriod    = "Sale Period"
	colNotes         = "Notes"
)

// ImportFile reads a sheet CSV export from path.
func ImportFile(path string) ([]model.Deal, error) {
	f, err := os.Open(path) //nolint:gosec // operator-supplied import path
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Import(f)
}

// Import parses a sheet CSV export. The export starts with a few banner
// rows; the real header row is the one naming the category and product
// columns, and everything above it is skipped.
func Import(r io.Reader) ([]model.Deal, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	lines := strings.Split(string(raw), "\n")
	headerLine := -1
	for i, line := range lines {
		if strings.Contains(line, colMain) && strings.Contains(line, colTitle) {
			headerLine = i
			break
		}
	}
	if headerLine == -1 {
		return nil, fmt.Errorf("header row with %q and %q not found", colMain, colTitle)
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(lines[headerLine:], "\n")))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	now := time.Now().UTC().Format(timeLayout)
	var deals []model.Deal
	index := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		index++

		title := field(record, colTitle)
		main := field(record, colMain)
		if title == "" || strings.HasPrefix(title, "See all") || main == "" {
			continue
		}

		deals = append(deals, model.Deal{
			ID:            DealID(index, title),
			Title:         title,
			Link:          normalize.Link(SearchURL(title)),
			MainCategory:  main,
			SubCategory:   field(record, colSub),
			SalePrice:     field(record, colSalePrice),
			OriginalPrice: field(record, colOriginalPrice),
			Store:         field(record, colStore),
			SalePeriod:    field(record, colSalePeriod),
			Notes:         field(record, colNotes),
			PubDate:       now,
		})
	}
	return deals, nil
}

// DealID builds a stable identifier for a sheet row from its position and
// the first words of its title, e.g. "sheet-3-bose-quietcomfort-ultra".
func DealID(index int, title string) string {
	var clean strings.Builder
	for _, r := range strings.ToLower(title) {
		if r == ' ' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			clean.WriteRune(r)
		}
	}
	words := strings.Fields(clean.String())
	if len(words) > 5 {
		words = words[:5]
	}
	id := fmt.Sprintf("sheet-%d-%s", index, strings.Join(words, "-"))
	if len(id) > 100 {
		id = id[:100]
	}
	return id
}

// SearchURL builds the search fallback link for a sheet row whose hyperlink
// is not present in the CSV export: the title with its price and offer
// tails cut off, pointed at the deals forum search.
func SearchURL(title string) string {
	q := title
	for _, sep := range []string{" $", " from ", " +", " -", " @"} {
		if i := strings.Index(q, sep); i >= 0 {
			q = q[:i]
		}
	}
	for _, qualifier := range []string{
		"(various colors)", "(various sizes)", "(select colors)", "(select sizes)",
	} {
		q = strings.ReplaceAll(q, qualifier, "")
	}
	q = strings.Join(strings.Fields(q), " ")

	return "https://slickdeals.net/newsearch.php?searchin=first&forumchoice%5B%5D=9&q=" +
		url.QueryEscape(q) + "&" + normalize.TrackingParam
}
