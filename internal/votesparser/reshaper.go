package votesparser

import (
	"fmt"

	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"
	"fjacquet/co-early-votes/internal/parsererror"
	"fjacquet/co-early-votes/internal/textutils"
)

// Reshaper melts wide county/gender rows into one record per party.
type Reshaper struct {
	logger          logging.Logger
	checkGrandTotal bool
}

// NewReshaper creates a Reshaper. With checkGrandTotal set, every row's
// party counts are compared with its grand-total cell and mismatches are
// logged as warnings.
func NewReshaper(logger logging.Logger, checkGrandTotal bool) *Reshaper {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Reshaper{logger: logger, checkGrandTotal: checkGrandTotal}
}

// reshapeState is the accumulator folded over the grid.
type reshapeState struct {
	county  string
	records []models.Record
}

// Reshape emits eight records per data row, in row order then party-column
// order. COUNTY header rows are skipped. A blank county cell repeats the
// county of the nearest preceding row that had one; a blank county before
// any county was seen is an error. filePath is only used in diagnostics.
func (r *Reshaper) Reshape(filePath string, rows []models.Row, reportDate string) ([]models.Record, error) {
	state := reshapeState{records: make([]models.Record, 0, len(rows)*len(models.PartyColumns))}

	for _, row := range rows {
		next, err := r.step(filePath, state, row, reportDate)
		if err != nil {
			return nil, err
		}
		state = next
	}

	return state.records, nil
}

func (r *Reshaper) step(filePath string, state reshapeState, row models.Row, reportDate string) (reshapeState, error) {
	if isHeader(row.Cell(models.CountyColumn)) {
		return state, nil
	}
	if len(row.Cells) != models.DataColumns {
		return state, &parsererror.RowLayoutError{
			Page:  row.Page,
			Row:   row.Index,
			Got:   len(row.Cells),
			Want:  models.DataColumns,
			Cells: row.Cells,
		}
	}

	if county := textutils.NormalizeCell(row.Cells[models.CountyColumn]); county != "" {
		state.county = county
	}
	if state.county == "" {
		return state, &parsererror.DataExtractionError{
			FilePath:       filePath,
			FieldName:      "county",
			RawDataSnippet: fmt.Sprintf("page %d row %d: %q", row.Page, row.Index, row.Cells),
			Reason:         "no preceding row names a county",
			Msg:            "county cell is empty",
		}
	}
	gender := textutils.NormalizeCell(row.Cells[models.GenderColumn])

	sum := 0
	for _, col := range models.PartyColumns {
		count, err := textutils.ParseCount(row.Cells[col.Index])
		if err != nil {
			return state, &parsererror.CellError{
				Page:   row.Page,
				Row:    row.Index,
				Column: col.Party.String(),
				Err: &parsererror.ParseError{
					Parser: "votes",
					Field:  col.Party.String(),
					Value:  row.Cells[col.Index],
					Err:    err,
				},
			}
		}
		sum += count
		state.records = append(state.records, models.Record{
			ReportDate:    reportDate,
			County:        state.county,
			Gender:        gender,
			Party:         col.Party,
			ReturnedVotes: count,
		})
	}

	if r.checkGrandTotal {
		r.verifyGrandTotal(row, state.county, sum)
	}
	return state, nil
}

func (r *Reshaper) verifyGrandTotal(row models.Row, county string, sum int) {
	logger := r.logger.WithFields(
		logging.F(logging.FieldPage, row.Page),
		logging.F(logging.FieldRow, row.Index),
		logging.F(logging.FieldCounty, county))

	total, err := textutils.ParseCount(row.GrandTotal)
	if err != nil {
		logger.WithError(err).Warn("Grand total is not a number")
		return
	}
	if total != sum {
		logger.Warn("Party counts do not add up to the grand total",
			logging.F(logging.FieldExpected, total),
			logging.F(logging.FieldActual, sum))
	}
}
