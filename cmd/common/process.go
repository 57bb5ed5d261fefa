// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"

	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/parser"
)

// ProcessFile converts one report with the given parser and returns the CSV
// path written into outputDir.
func ProcessFile(ctx context.Context, p parser.FullParser, inputFile, outputDir string, log logging.Logger) (string, error) {
	p.SetLogger(log)

	log.Info("Converting report",
		logging.F(logging.FieldInputFile, inputFile),
		logging.F("output_dir", outputDir))

	csvFile, err := p.ConvertToCSV(ctx, inputFile, outputDir)
	if err != nil {
		return "", fmt.Errorf("error converting %s: %w", inputFile, err)
	}

	log.Info("Conversion completed successfully!",
		logging.F(logging.FieldOutputFile, csvFile))
	return csvFile, nil
}
