package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldPage       = "page"
	FieldRow        = "row"
	FieldColumn     = "column"
	FieldCounty     = "county"
	FieldReportDate = "report_date"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldOperation  = "operation"
	FieldExpected   = "expected"
	FieldActual     = "actual"
)
