package pdfparser

import (
	"context"

	"fjacquet/co-early-votes/internal/models"
)

// TableExtractor turns a PDF into one table per page. It is the only surface
// the votes parser needs from a PDF library, which keeps the parser testable
// with canned grids.
type TableExtractor interface {
	// ExtractTables returns one PageTable per page, in page order, with
	// 1-based page numbers.
	ExtractTables(ctx context.Context, pdfPath string) ([]models.PageTable, error)
}

// MockTableExtractor implements TableExtractor for testing purposes.
type MockTableExtractor struct {
	Tables []models.PageTable
	Err    error
	Calls  []string
}

// NewMockTableExtractor creates a MockTableExtractor returning the given tables.
func NewMockTableExtractor(tables []models.PageTable, err error) *MockTableExtractor {
	return &MockTableExtractor{Tables: tables, Err: err}
}

// ExtractTables returns the predefined tables or error.
func (m *MockTableExtractor) ExtractTables(ctx context.Context, pdfPath string) ([]models.PageTable, error) {
	m.Calls = append(m.Calls, pdfPath)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Tables, nil
}
