// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fjacquet/co-early-votes/internal/common"
	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"
)

// BaseParser provides the logger and output settings shared by parser
// implementations. Parsers embed it:
//
//	type Adapter struct {
//		parser.BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger    logging.Logger
	delimiter rune
}

// NewBaseParser creates a BaseParser. A nil logger is replaced by a default
// text logger and a zero delimiter by a comma.
func NewBaseParser(logger logging.Logger, delimiter rune) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = common.DefaultDelimiter
	}
	return BaseParser{
		logger:    logger,
		delimiter: delimiter,
	}
}

// SetLogger implements the LoggerConfigurable interface.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// Delimiter returns the CSV field separator.
func (b *BaseParser) Delimiter() rune {
	return b.delimiter
}

// WriteToCSV writes records with the shared CSV writer.
func (b *BaseParser) WriteToCSV(records []models.Record, csvFile string) error {
	return common.WriteRecordsToCSV(records, csvFile, b.delimiter, b.logger)
}

// WriteToXLSX writes records with the shared workbook writer.
func (b *BaseParser) WriteToXLSX(records []models.Record, xlsxFile string) error {
	return common.WriteRecordsToXLSX(records, xlsxFile, b.logger)
}
