// Package dateutils derives the report date from a ballots-returned report
// filename and builds the dated output file names.
package dateutils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"fjacquet/co-early-votes/internal/models"
	"fjacquet/co-early-votes/internal/parsererror"
)

// Date layouts used by the report and its output.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutFilename = "20060102"
)

var dateSegment = regexp.MustCompile(`^[0-9]{8}$`)

// ParseReportDate reads the leading YYYYMMDD segment of a report filename
// such as "20181026BallotsReturnedByAgePartyGender.pdf". Directories in path
// are ignored. The segment is everything before the first "Ballot".
func ParseReportDate(path string) (time.Time, error) {
	base := filepath.Base(path)
	segment := base
	if i := strings.Index(base, models.ReportFileToken); i >= 0 {
		segment = base[:i]
	}

	if !dateSegment.MatchString(segment) {
		return time.Time{}, &parsererror.ReportDateError{
			FilePath: path,
			Segment:  segment,
			Err:      fmt.Errorf("expected 8 digits (YYYYMMDD) before %q", models.ReportFileToken),
		}
	}

	date, err := time.Parse(DateLayoutFilename, segment)
	if err != nil {
		return time.Time{}, &parsererror.ReportDateError{FilePath: path, Segment: segment, Err: err}
	}
	return date, nil
}

// ReportDateFromPath is ParseReportDate formatted as an ISO-8601 date.
func ReportDateFromPath(path string) (string, error) {
	date, err := ParseReportDate(path)
	if err != nil {
		return "", err
	}
	return ToISODate(date), nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// OutputFileName returns "<reportDate>-co-early-vote-totals<ext>".
func OutputFileName(reportDate, ext string) string {
	return reportDate + models.OutputFileSuffix + ext
}

// CSVFileName returns the CSV output name for a report date.
func CSVFileName(reportDate string) string {
	return OutputFileName(reportDate, models.CSVExtension)
}
