package service

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
	"github.com/blackout-luminera/guild-xp-ranking/internal/ranking"
)

const (
	minMemberRowCells   = 15
	characterLinkMarker = "character?nick="
)

// CellLink is the first anchor found inside a table cell.
type CellLink struct {
	Href string
	Text string
}

type TableCell struct {
	Text string
	Link *CellLink
}

// TableRow is a parsed <tr>, independent of the HTML library.
type TableRow struct {
	Cells []TableCell
}

// CharacterLink returns the first cell link pointing at a character profile.
func (r TableRow) CharacterLink() (*CellLink, bool) {
	for _, cell := range r.Cells {
		if cell.Link != nil && strings.Contains(cell.Link.Href, characterLinkMarker) {
			return cell.Link, true
		}
	}
	return nil, false
}

// IsValidMemberRow reports whether a row is a member row: enough cells and a character link.
func IsValidMemberRow(row TableRow) bool {
	if len(row.Cells) < minMemberRowCells {
		return false
	}
	_, ok := row.CharacterLink()
	return ok
}

// ParseMemberRow extracts a record from a member row. The experience deltas sit
// in the 4th, 3rd and 2nd cells from the end.
func ParseMemberRow(row TableRow) (domain.ExperienceRecord, bool) {
	if !IsValidMemberRow(row) {
		return domain.ExperienceRecord{}, false
	}

	link, _ := row.CharacterLink()
	name := strings.TrimSpace(link.Text)
	if name == "" {
		return domain.ExperienceRecord{}, false
	}

	n := len(row.Cells)
	return domain.ExperienceRecord{
		Name:         name,
		Level:        ranking.ParseLevel(row.Cells[2].Text),
		ExpYesterday: ranking.NormalizeExp(row.Cells[n-4].Text),
		Exp7Days:     ranking.NormalizeExp(row.Cells[n-3].Text),
		Exp30Days:    ranking.NormalizeExp(row.Cells[n-2].Text),
	}, true
}

// TableStats counts what happened to the rows of a statistics page.
type TableStats struct {
	Rows       int
	Skipped    int
	Duplicates int
}

// ReadTableRows converts every <tr> of an HTML document into a TableRow.
func ReadTableRows(r io.Reader) ([]TableRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	rows := make([]TableRow, 0)
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		row := TableRow{Cells: make([]TableCell, 0, cells.Length())}
		cells.Each(func(_ int, td *goquery.Selection) {
			cell := TableCell{Text: strings.TrimSpace(td.Text())}
			if a := td.Find("a").First(); a.Length() > 0 {
				href, _ := a.Attr("href")
				cell.Link = &CellLink{Href: href, Text: a.Text()}
			}
			row.Cells = append(row.Cells, cell)
		})
		rows = append(rows, row)
	})
	return rows, nil
}

// ParseExperienceTable reads every member row of a statistics page in document
// order. A name seen twice (case-insensitive) keeps its first row.
func ParseExperienceTable(r io.Reader) ([]domain.ExperienceRecord, TableStats, error) {
	rows, err := ReadTableRows(r)
	if err != nil {
		return nil, TableStats{}, err
	}

	stats := TableStats{Rows: len(rows)}
	records := make([]domain.ExperienceRecord, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		rec, ok := ParseMemberRow(row)
		if !ok {
			stats.Skipped++
			continue
		}
		key := domain.NameKey(rec.Name)
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}
		records = append(records, rec)
	}

	return records, stats, nil
}
