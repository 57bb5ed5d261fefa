package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/co-early-votes/internal/common"
	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"
	"fjacquet/co-early-votes/internal/pdfparser"
	"fjacquet/co-early-votes/internal/votesparser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{"COUNTY", "GENDER", "ACN", "APV", "DEM", "GRN", "LBR", "REP", "UAF", "UNI", "GRAND TOTAL"}

// reportPages builds a report with the given counties, three gender rows
// each, spread over pages of rowsPerPage data rows. Every page after the
// first repeats the VOTER PARTY sub-header and the COUNTY header.
func reportPages(counties []string, rowsPerPage int) []models.PageTable {
	pages := []models.PageTable{{
		Number: 1,
		Rows: [][]string{
			{"Ballots Returned", "Count", "Percent"},
			{"ACN", "1,000", "1%"},
			header,
		},
	}}

	n := 0
	for _, county := range counties {
		for g, gender := range []string{"Female", "Male", "Unknown"} {
			if n > 0 && n%rowsPerPage == 0 {
				pages = append(pages, models.PageTable{
					Number: len(pages) + 1,
					Rows: [][]string{
						{"VOTER PARTY", "", "", "", "", "", "", "", "", "", ""},
						header,
					},
				})
			}
			first := ""
			if g == 0 {
				first = county
			}
			page := &pages[len(pages)-1]
			page.Rows = append(page.Rows, []string{first, gender, "1,000", "1", "2", "3", "4", "5", "6", "7", "1,028"})
			n++
		}
		page := &pages[len(pages)-1]
		page.Rows = append(page.Rows, []string{county + " TOTAL", "", "3,000", "3", "6", "9", "12", "15", "18", "21", "3,084"})
	}
	return pages
}

func TestPipeline_CSVRoundTrip(t *testing.T) {
	counties := []string{"Adams", "Alamosa", "Arapahoe", "Archuleta", "Baca", "Bent", "Boulder"}
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "20181026BallotsReturnedByAgePartyGender.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4\n"), 0600))

	logger := logging.NewMockLogger()
	pages := reportPages(counties, 4)
	require.Greater(t, len(pages), 3)

	adapter := votesparser.NewAdapter(logger, pdfparser.NewMockTableExtractor(pages, nil), votesparser.Options{
		CheckGrandTotal: true,
		CheckRecords:    true,
	})
	csvFile, err := adapter.ConvertToCSV(context.Background(), pdfPath, dir)
	require.NoError(t, err)
	assert.Empty(t, logger.GetEntriesByLevel("WARN"))

	records, err := common.ReadCSVFile[models.Record](csvFile, logger)
	require.NoError(t, err)
	require.Len(t, records, len(counties)*3*len(models.PartyColumns))

	for i, rec := range records {
		row := i / len(models.PartyColumns)
		assert.Equal(t, "2018-10-26", rec.ReportDate)
		assert.Equal(t, counties[row/3], rec.County, "record %d", i)
		assert.Equal(t, models.PartyColumns[i%len(models.PartyColumns)].Party, rec.Party)
	}
	assert.Equal(t, 1000, records[0].ReturnedVotes)
	assert.Equal(t, 7, records[7].ReturnedVotes)
}

func TestPipeline_Deterministic(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "20181026Ballots.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4\n"), 0600))
	pages := reportPages([]string{"Adams", "Denver"}, 5)

	var outputs []string
	for i := 0; i < 2; i++ {
		outDir := filepath.Join(dir, fmt.Sprintf("run%d", i))
		adapter := votesparser.NewAdapter(logging.NewMockLogger(), pdfparser.NewMockTableExtractor(pages, nil), votesparser.Options{})

		csvFile, err := adapter.ConvertToCSV(context.Background(), pdfPath, outDir)
		require.NoError(t, err)

		data, err := os.ReadFile(csvFile) // #nosec G304 -- test file in t.TempDir
		require.NoError(t, err)
		outputs = append(outputs, string(data))
	}
	assert.Equal(t, outputs[0], outputs[1])
}

func TestPipeline_OverwritesPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "20181026Ballots.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4\n"), 0600))
	csvFile := filepath.Join(dir, "2018-10-26-co-early-vote-totals.csv")
	require.NoError(t, os.WriteFile(csvFile, []byte("stale\n"), 0600))

	adapter := votesparser.NewAdapter(logging.NewMockLogger(),
		pdfparser.NewMockTableExtractor(reportPages([]string{"Adams"}, 10), nil), votesparser.Options{})
	_, err := adapter.ConvertToCSV(context.Background(), pdfPath, dir)
	require.NoError(t, err)

	records, err := common.ReadCSVFile[models.Record](csvFile, logging.NewMockLogger())
	require.NoError(t, err)
	assert.Len(t, records, 24)

	leftovers, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
