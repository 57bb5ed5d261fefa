// Package parsererror defines the typed errors returned while turning a
// ballots-returned report into records. Every failure is fatal to a run; the
// types exist so the diagnostic names the page, row and cell involved.
package parsererror

import "fmt"

// ParseError represents a value that could not be parsed.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReportDateError is returned when the input filename does not start with a
// valid YYYYMMDD date followed by "Ballot".
type ReportDateError struct {
	FilePath string
	Segment  string
	Err      error
}

func (e *ReportDateError) Error() string {
	return fmt.Sprintf("cannot derive report date from '%s' (date segment '%s'): %v",
		e.FilePath, e.Segment, e.Err)
}

func (e *ReportDateError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input that does not conform to the
// expected report layout.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// RowLayoutError is returned when a data row does not have the fixed
// number of cells.
type RowLayoutError struct {
	Page  int
	Row   int
	Got   int
	Want  int
	Cells []string
}

func (e *RowLayoutError) Error() string {
	return fmt.Sprintf("page %d row %d: expected %d cells, got %d %q",
		e.Page, e.Row, e.Want, e.Got, e.Cells)
}

// CellError locates a failure inside the unified grid.
type CellError struct {
	Page   int
	Row    int
	Column string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("page %d row %d column %s: %v", e.Page, e.Row, e.Column, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// DataExtractionError represents required data that could not be
// extracted, even though the layout itself looked valid.
type DataExtractionError struct {
	FilePath       string
	FieldName      string
	RawDataSnippet string // Optional
	Reason         string
	Msg            string
}

func (e *DataExtractionError) Error() string {
	if e.RawDataSnippet != "" {
		return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s. Reason: %s. Raw data snippet: '%s'",
			e.FilePath, e.FieldName, e.Msg, e.Reason, e.RawDataSnippet)
	}
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s. Reason: %s",
		e.FilePath, e.FieldName, e.Msg, e.Reason)
}
