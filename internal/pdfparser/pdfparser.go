// Package pdfparser extracts per-page tables from PDF reports.
//
// The production extractor reads positioned text with github.com/ledongthuc/pdf
// and rebuilds each page's table from glyph coordinates: glyphs are grouped
// into lines by baseline, merged into phrases, and placed into the columns
// announced by the report's COUNTY header line.
package pdfparser

import (
	"context"
	"fmt"

	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"
	"fjacquet/co-early-votes/internal/parsererror"

	"github.com/ledongthuc/pdf"
)

// DefaultRowTolerance is the baseline distance, in points, under which two
// glyphs are considered to be on the same table row.
const DefaultRowTolerance = 2.0

// LayoutExtractor implements TableExtractor using ledongthuc/pdf.
type LayoutExtractor struct {
	logger       logging.Logger
	rowTolerance float64
}

// NewLayoutExtractor creates a LayoutExtractor. A non-positive tolerance
// falls back to DefaultRowTolerance.
func NewLayoutExtractor(logger logging.Logger, rowTolerance float64) *LayoutExtractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if rowTolerance <= 0 {
		rowTolerance = DefaultRowTolerance
	}
	return &LayoutExtractor{logger: logger, rowTolerance: rowTolerance}
}

// ExtractTables reads every page of the PDF at pdfPath.
func (e *LayoutExtractor) ExtractTables(ctx context.Context, pdfPath string) ([]models.PageTable, error) {
	file, reader, err := pdf.Open(pdfPath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       pdfPath,
			ExpectedFormat: "PDF",
			Msg:            fmt.Sprintf("cannot open document: %v", err),
		}
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close PDF file",
				logging.F(logging.FieldFile, pdfPath))
		}
	}()

	numPages := reader.NumPage()
	e.logger.Debug("Opened PDF",
		logging.F(logging.FieldFile, pdfPath),
		logging.F(logging.FieldCount, numPages))

	layout := &pageLayout{rowTolerance: e.rowTolerance}
	tables := make([]models.PageTable, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		texts, err := pageText(reader, i)
		if err != nil {
			return nil, &parsererror.ParseError{
				Parser: "PDF",
				Field:  fmt.Sprintf("page %d", i),
				Value:  pdfPath,
				Err:    err,
			}
		}

		rows := layout.buildTable(texts)
		e.logger.Debug("Extracted page table",
			logging.F(logging.FieldPage, i),
			logging.F(logging.FieldCount, len(rows)))
		tables = append(tables, models.PageTable{Number: i, Rows: rows})
	}

	return tables, nil
}

// pageText returns the positioned glyphs of page i. The content stream
// decoder panics on malformed input, so panics are turned into errors.
func pageText(reader *pdf.Reader, i int) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream: %v", r)
		}
	}()

	page := reader.Page(i)
	if page.V.IsNull() {
		return nil, nil
	}
	return page.Content().Text, nil
}
