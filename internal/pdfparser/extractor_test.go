package pdfparser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/models"
	"fjacquet/co-early-votes/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTableExtractor(t *testing.T) {
	tables := []models.PageTable{{Number: 1, Rows: [][]string{{"COUNTY"}}}}
	mock := NewMockTableExtractor(tables, nil)

	got, err := mock.ExtractTables(context.Background(), "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, tables, got)
	assert.Equal(t, []string{"a.pdf"}, mock.Calls)

	failing := NewMockTableExtractor(nil, errors.New("boom"))
	_, err = failing.ExtractTables(context.Background(), "b.pdf")
	assert.EqualError(t, err, "boom")
}

func TestMockTableExtractor_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMockTableExtractor(nil, nil).ExtractTables(ctx, "a.pdf")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLayoutExtractor_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "20181026Ballots.pdf")
	require.NoError(t, os.WriteFile(path, []byte("This is not a PDF file"), 0600))

	e := NewLayoutExtractor(logging.NewMockLogger(), DefaultRowTolerance)
	_, err := e.ExtractTables(context.Background(), path)
	require.Error(t, err)

	var formatErr *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, path, formatErr.FilePath)
}

func TestLayoutExtractor_MissingFile(t *testing.T) {
	e := NewLayoutExtractor(logging.NewMockLogger(), DefaultRowTolerance)
	_, err := e.ExtractTables(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
