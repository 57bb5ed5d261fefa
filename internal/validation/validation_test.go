package validation_test

import (
	"testing"

	"fjacquet/co-early-votes/internal/models"
	"fjacquet/co-early-votes/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordsFor(county, gender string) []models.Record {
	records := make([]models.Record, 0, len(models.PartyColumns))
	for _, col := range models.PartyColumns {
		records = append(records, models.Record{
			ReportDate: "2018-10-26",
			County:     county,
			Gender:     gender,
			Party:      col.Party,
		})
	}
	return records
}

func TestCheckRecords_Clean(t *testing.T) {
	var records []models.Record
	records = append(records, recordsFor("Adams", "Male")...)
	records = append(records, recordsFor("Adams", "Female")...)
	records = append(records, recordsFor("Alamosa", "Male")...)

	assert.Empty(t, validation.CheckRecords(records))
	assert.Empty(t, validation.CheckRecords(nil))
}

func TestCheckRecords_Duplicates(t *testing.T) {
	var records []models.Record
	records = append(records, recordsFor("Adams", "Male")...)
	records = append(records, recordsFor("Adams", "Male")...)

	issues := validation.CheckRecords(records)
	require.Len(t, issues, 8)
	assert.Equal(t, validation.Key{County: "Adams", Gender: "Male", Party: models.PartyACN}, issues[0].Key)
	assert.Equal(t, "Adams/Male/ACN: appears 2 times", issues[0].String())
	assert.Equal(t, models.PartyUNI, issues[7].Key.Party)
}

func TestCheckRecords_MissingParties(t *testing.T) {
	records := recordsFor("Adams", "Male")[:5]

	issues := validation.CheckRecords(records)
	require.Len(t, issues, 1)
	assert.Equal(t, "Adams/Male/: has 5 of 8 parties", issues[0].String())
}

func TestSummary(t *testing.T) {
	issues := []validation.Issue{
		{Key: validation.Key{County: "A", Gender: "Male", Party: models.PartyDEM}, Message: "appears 2 times"},
		{Key: validation.Key{County: "B", Gender: "Male", Party: models.PartyREP}, Message: "appears 3 times"},
		{Key: validation.Key{County: "C", Gender: "Female", Party: models.PartyUNI}, Message: "appears 2 times"},
	}

	assert.Equal(t, "", validation.Summary(nil, 2))
	assert.Equal(t, "A/Male/DEM: appears 2 times; B/Male/REP: appears 3 times (and 1 more)", validation.Summary(issues, 2))
	assert.Equal(t, "A/Male/DEM: appears 2 times; B/Male/REP: appears 3 times; C/Female/UNI: appears 2 times", validation.Summary(issues, 0))
}
