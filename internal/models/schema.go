package models

// Column positions of a data row once the grand-total cell is removed:
//
//	COUNTY GENDER ACN APV DEM GRN LBR REP UAF UNI
const (
	CountyColumn = 0
	GenderColumn = 1
	DataColumns  = 10

	// RawColumns includes the trailing grand-total cell.
	RawColumns = DataColumns + 1
)

// PartyColumn maps a cell position to the party it counts.
type PartyColumn struct {
	Index int
	Party Party
}

// PartyColumns is the ordered position->party mapping of a data row.
// Records are emitted in this order.
var PartyColumns = []PartyColumn{
	{Index: 2, Party: PartyACN},
	{Index: 3, Party: PartyAPV},
	{Index: 4, Party: PartyDEM},
	{Index: 5, Party: PartyGRN},
	{Index: 6, Party: PartyLBR},
	{Index: 7, Party: PartyREP},
	{Index: 8, Party: PartyUAF},
	{Index: 9, Party: PartyUNI},
}

// ColumnNames returns the report's header names for a data row.
func ColumnNames() []string {
	names := make([]string, DataColumns)
	names[CountyColumn] = "COUNTY"
	names[GenderColumn] = "GENDER"
	for _, col := range PartyColumns {
		names[col.Index] = string(col.Party)
	}
	return names
}

// ColumnName returns the header name at position i, or "" if out of range.
func ColumnName(i int) string {
	if i < 0 || i >= DataColumns {
		return ""
	}
	return ColumnNames()[i]
}
