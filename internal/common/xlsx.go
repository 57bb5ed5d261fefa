package common

import (
	"fmt"
	"io"

	"fjacquet/co-early-votes/internal/fileutils"
	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"

	"github.com/xuri/excelize/v2"
)

// XLSXSheetName is the worksheet holding the records.
const XLSXSheetName = "early_votes"

// WriteRecordsToXLSX writes the same rows as the CSV output, header first,
// to a single-sheet workbook.
func WriteRecordsToXLSX(records []models.Record, xlsxFile string, logger logging.Logger) error {
	logger.Info("Writing records to XLSX file",
		logging.F(logging.FieldOutputFile, xlsxFile),
		logging.F(logging.FieldCount, len(records)))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", XLSXSheetName); err != nil {
		return fmt.Errorf("error naming worksheet: %w", err)
	}

	sw, err := f.NewStreamWriter(XLSXSheetName)
	if err != nil {
		return fmt.Errorf("error opening worksheet stream: %w", err)
	}

	header := make([]interface{}, len(models.RecordHeader))
	for i, h := range models.RecordHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("error writing XLSX header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, rec.Values()); err != nil {
			return fmt.Errorf("error writing XLSX row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("error flushing worksheet: %w", err)
	}

	return fileutils.WriteFileAtomic(xlsxFile, models.PermissionReportFile, func(w io.Writer) error {
		return f.Write(w)
	})
}
