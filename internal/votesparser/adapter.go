// Package votesparser converts the county early-vote "ballots returned"
// report into flat (county, gender, party) records.
//
// The work is split in two passes: the Assembler keeps the genuine data rows
// of every page's table, and the Reshaper melts each wide row into one record
// per party column.
package votesparser

import (
	"context"
	"fmt"
	"path/filepath"

	"fjacquet/co-early-votes/internal/dateutils"
	"fjacquet/co-early-votes/internal/fileutils"
	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"
	"fjacquet/co-early-votes/internal/parser"
	"fjacquet/co-early-votes/internal/pdfparser"
	"fjacquet/co-early-votes/internal/validation"
)

// Options tunes an Adapter.
type Options struct {
	Delimiter       rune
	CheckGrandTotal bool
	CheckRecords    bool
	WriteXLSX       bool
}

// Adapter implements parser.FullParser for the ballots-returned report.
type Adapter struct {
	parser.BaseParser
	extractor pdfparser.TableExtractor
	opts      Options
}

// NewAdapter creates an Adapter. A nil extractor selects the ledongthuc/pdf
// layout extractor with its default row tolerance.
func NewAdapter(logger logging.Logger, extractor pdfparser.TableExtractor, opts Options) *Adapter {
	base := parser.NewBaseParser(logger, opts.Delimiter)
	if extractor == nil {
		extractor = pdfparser.NewLayoutExtractor(base.GetLogger(), pdfparser.DefaultRowTolerance)
	}
	return &Adapter{
		BaseParser: base,
		extractor:  extractor,
		opts:       opts,
	}
}

// Parse validates the input, then extracts, assembles and reshapes it. The
// filename is checked before the document is opened.
func (a *Adapter) Parse(ctx context.Context, pdfPath string) (*models.Report, error) {
	logger := a.GetLogger().WithField(logging.FieldInputFile, pdfPath)

	reportDate, err := dateutils.ReportDateFromPath(pdfPath)
	if err != nil {
		return nil, err
	}
	if err := fileutils.RequireFile(pdfPath); err != nil {
		return nil, err
	}
	logger.Info("Parsing ballots returned report", logging.F(logging.FieldReportDate, reportDate))

	tables, err := a.extractor.ExtractTables(ctx, pdfPath)
	if err != nil {
		return nil, fmt.Errorf("extracting tables: %w", err)
	}
	logger.Debug("Extracted tables", logging.F(logging.FieldCount, len(tables)))

	rows, err := NewAssembler(logger).Assemble(pdfPath, tables)
	if err != nil {
		return nil, fmt.Errorf("assembling rows: %w", err)
	}

	records, err := NewReshaper(logger, a.opts.CheckGrandTotal).Reshape(pdfPath, rows, reportDate)
	if err != nil {
		return nil, fmt.Errorf("reshaping rows: %w", err)
	}
	if a.opts.CheckRecords {
		if issues := validation.CheckRecords(records); len(issues) > 0 {
			logger.Warn("Report has inconsistent records",
				logging.F(logging.FieldCount, len(issues)),
				logging.F("issues", validation.Summary(issues, 5)))
		}
	}
	logger.Info("Parsed report",
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldReportDate, reportDate))

	return &models.Report{
		SourceFile: pdfPath,
		ReportDate: reportDate,
		Records:    records,
	}, nil
}

// ConvertToCSV parses pdfPath and writes <report_date>-co-early-vote-totals.csv
// into outputDir, plus the .xlsx twin when enabled. Nothing is written
// unless the whole document parsed.
func (a *Adapter) ConvertToCSV(ctx context.Context, pdfPath, outputDir string) (string, error) {
	report, err := a.Parse(ctx, pdfPath)
	if err != nil {
		return "", err
	}

	if outputDir == "" {
		outputDir = "."
	}
	csvFile := filepath.Join(outputDir, dateutils.CSVFileName(report.ReportDate))
	if err := a.WriteToCSV(report.Records, csvFile); err != nil {
		return "", err
	}

	if a.opts.WriteXLSX {
		xlsxFile := filepath.Join(outputDir, dateutils.OutputFileName(report.ReportDate, models.XLSXExtension))
		if err := a.WriteToXLSX(report.Records, xlsxFile); err != nil {
			return "", err
		}
	}

	return csvFile, nil
}
