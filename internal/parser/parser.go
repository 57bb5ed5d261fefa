package parser

import (
	"context"

	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"
)

// Parser reads a report document into records.
type Parser interface {
	// Parse derives the report date from pdfPath, then extracts and reshapes
	// its tables. Implementations return parsererror types for layout and
	// value failures.
	Parse(ctx context.Context, pdfPath string) (*models.Report, error)
}

// Converter writes a parsed report to its output files.
type Converter interface {
	// ConvertToCSV parses pdfPath and writes the dated CSV into outputDir,
	// returning the path written.
	ConvertToCSV(ctx context.Context, pdfPath, outputDir string) (string, error)
}

// LoggerConfigurable is implemented by parsers whose logger can be replaced.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser combines every parser capability.
type FullParser interface {
	Parser
	Converter
	LoggerConfigurable
}
