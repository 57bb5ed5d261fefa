package votesparser

import (
	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"
	"fjacquet/co-early-votes/internal/parsererror"
	"fjacquet/co-early-votes/internal/textutils"
)

// Assembler turns the per-page tables of a report into the unified data grid.
type Assembler struct {
	logger logging.Logger
}

// NewAssembler creates an Assembler.
func NewAssembler(logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Assembler{logger: logger}
}

// Assemble concatenates the data rows of every page, in page order.
// filePath is only used in diagnostics.
func (a *Assembler) Assemble(filePath string, tables []models.PageTable) ([]models.Row, error) {
	var grid []models.Row
	for _, table := range tables {
		rows, err := a.AssemblePage(filePath, table)
		if err != nil {
			return nil, err
		}
		grid = append(grid, rows...)
	}
	return grid, nil
}

// AssemblePage keeps the genuine rows of one page.
//
// Page 1 carries the report summary table in front of the county table; every
// row before the first COUNTY header is dropped, and a page 1 without such a
// header is a format error. On every page, empty rows, VOTER PARTY
// sub-headers and subtotal rows are dropped. The trailing grand-total cell of
// each kept row is moved to Row.GrandTotal. COUNTY header rows are kept for
// the Reshaper to skip.
func (a *Assembler) AssemblePage(filePath string, table models.PageTable) ([]models.Row, error) {
	start := 0
	if table.Number == 1 {
		start = headerIndex(table.Rows)
		if start < 0 {
			return nil, &parsererror.InvalidFormatError{
				FilePath:       filePath,
				ExpectedFormat: "a row starting with " + models.HeaderToken + " on page 1",
				Msg:            "county table not found after the summary table",
			}
		}
		a.logger.Debug("Skipped page 1 summary table",
			logging.F(logging.FieldPage, table.Number),
			logging.F(logging.FieldCount, start))
	}

	var rows []models.Row
	for i := start; i < len(table.Rows); i++ {
		cells := table.Rows[i]
		if isEmptyRow(cells) || isSubHeader(cells[0]) || isSubtotal(cells[0]) {
			continue
		}
		if len(cells) != models.RawColumns {
			return nil, &parsererror.RowLayoutError{
				Page:  table.Number,
				Row:   i,
				Got:   len(cells),
				Want:  models.RawColumns,
				Cells: cells,
			}
		}

		last := len(cells) - 1
		kept := make([]string, last)
		copy(kept, cells[:last])
		rows = append(rows, models.Row{
			Page:       table.Number,
			Index:      i,
			Cells:      kept,
			GrandTotal: cells[last],
		})
	}

	a.logger.Debug("Assembled page",
		logging.F(logging.FieldPage, table.Number),
		logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// headerIndex returns the index of the first row whose first cell contains
// the COUNTY token, or -1.
func headerIndex(rows [][]string) int {
	for i, cells := range rows {
		if len(cells) > 0 && isHeader(cells[0]) {
			return i
		}
	}
	return -1
}

func isHeader(first string) bool {
	return textutils.ContainsToken(first, models.HeaderToken)
}

func isSubHeader(first string) bool {
	return textutils.ContainsToken(first, models.SubHeaderToken)
}

func isSubtotal(first string) bool {
	return textutils.ContainsFold(first, models.SubtotalToken)
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if textutils.NormalizeCell(c) != "" {
			return false
		}
	}
	return true
}
