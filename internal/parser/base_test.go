package parser

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseParser(t *testing.T) {
	t.Run("with provided logger and delimiter", func(t *testing.T) {
		mockLog := logging.NewMockLogger()
		baseParser := NewBaseParser(mockLog, ';')

		assert.Equal(t, mockLog, baseParser.GetLogger())
		assert.Equal(t, ';', baseParser.Delimiter())
	})

	t.Run("defaults", func(t *testing.T) {
		baseParser := NewBaseParser(nil, 0)

		assert.NotNil(t, baseParser.GetLogger())
		assert.Equal(t, ',', baseParser.Delimiter())
	})
}

func TestBaseParser_SetLogger(t *testing.T) {
	baseParser := NewBaseParser(nil, 0)
	mockLog := logging.NewMockLogger()

	baseParser.SetLogger(mockLog)
	assert.Equal(t, mockLog, baseParser.GetLogger())

	baseParser.SetLogger(nil)
	assert.Equal(t, mockLog, baseParser.GetLogger(), "nil must not replace the logger")
}

func TestBaseParser_WriteToCSV(t *testing.T) {
	mockLog := logging.NewMockLogger()
	baseParser := NewBaseParser(mockLog, ';')
	csvFile := filepath.Join(t.TempDir(), "out.csv")

	records := []models.Record{
		{ReportDate: "2018-10-26", County: "Adams", Gender: "Male", Party: models.PartyUNI, ReturnedVotes: 3},
	}
	require.NoError(t, baseParser.WriteToCSV(records, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Equal(t, "report_date;county;gender;party;returned_votes\n2018-10-26;Adams;Male;UNI;3\n", string(data))
}

func TestBaseParser_WriteToXLSX(t *testing.T) {
	baseParser := NewBaseParser(logging.NewMockLogger(), 0)
	xlsxFile := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, baseParser.WriteToXLSX(nil, xlsxFile))
	info, err := os.Stat(xlsxFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
