// Package common provides the output writers shared by the converter.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"fjacquet/co-early-votes/internal/fileutils"
	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is the CSV field separator used when none is configured.
const DefaultDelimiter = ','

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, logger logging.Logger) ([]TCSVRow, error) {
	logger.Debug("Reading CSV file", logging.F(logging.FieldFile, filePath))

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return rows, nil
}

// WriteRecords marshals records, header first, to w.
func WriteRecords(w io.Writer, records []models.Record, delimiter rune) error {
	if records == nil {
		records = []models.Record{}
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteRecordsToCSV writes records to csvFile. The file only appears once it
// is complete; a failed write leaves no CSV behind.
func WriteRecordsToCSV(records []models.Record, csvFile string, delimiter rune, logger logging.Logger) error {
	logger.Info("Writing records to CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldDelimiter, string(delimiter)))

	err := fileutils.WriteFileAtomic(csvFile, models.PermissionReportFile, func(w io.Writer) error {
		return WriteRecords(w, records, delimiter)
	})
	if err != nil {
		logger.WithError(err).Error("Failed to write CSV file",
			logging.F(logging.FieldOutputFile, csvFile))
		return err
	}

	logger.Info("Successfully wrote CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(records)))
	return nil
}
