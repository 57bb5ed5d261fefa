package models

// PageTable is the grid of cell strings extracted from one PDF page.
// Missing cells are represented as "".
type PageTable struct {
	Number int // 1-based
	Rows   [][]string
}

// Row is one retained row of the unified data grid.
type Row struct {
	Page       int // 1-based page the row came from
	Index      int // 0-based position in that page's extracted table
	Cells      []string
	GrandTotal string
}

// Cell returns the cell at i, or "" when the row is shorter.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}
