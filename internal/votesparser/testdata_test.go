package votesparser

import "fjacquet/co-early-votes/internal/models"

var headerCells = []string{"COUNTY", "GENDER", "ACN", "APV", "DEM", "GRN", "LBR", "REP", "UAF", "UNI", "GRAND TOTAL"}

// samplePages mimics the report: page 1 opens with the summary table, then
// the county table; page 2 repeats the sub-header and header.
func samplePages() []models.PageTable {
	return []models.PageTable{
		{
			Number: 1,
			Rows: [][]string{
				{"Ballots Returned", "", ""},
				{"ACN", "1,000", "2%"},
				{"DEM", "40,000", "38%"},
				headerCells,
				{"Adams", "Male", "10", "20", "30", "5", "2", "40", "1", "3", "111"},
				{"", "Female", "1,234", "0", "0", "0", "0", "0", "0", "0", "1,234"},
				{"Adams Total", "", "1,244", "20", "30", "5", "2", "40", "1", "3", "1,345"},
				{},
			},
		},
		{
			Number: 2,
			Rows: [][]string{
				{"VOTER\u00a0PARTY", "", "", "", "", "", "", "", "", "", ""},
				headerCells,
				{"Alamosa", "Male", "1", "1", "1", "1", "1", "1", "1", "1", "8"},
				{"", "Unknown", "0", "0", "2", "0", "0", "0", "0", "0", "2"},
				{"", "", "", "", "", "", "", "", "", "", ""},
				{"GRAND TOTAL", "", "1,245", "21", "33", "6", "3", "41", "2", "4", "1,355"},
			},
		},
	}
}
