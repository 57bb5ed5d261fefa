package models

// Record is one flat (county, gender, party) count.
type Record struct {
	ReportDate    string `csv:"report_date"`
	County        string `csv:"county"`
	Gender        string `csv:"gender"`
	Party         Party  `csv:"party"`
	ReturnedVotes int    `csv:"returned_votes"`
}

// RecordHeader lists the CSV columns in output order.
var RecordHeader = []string{"report_date", "county", "gender", "party", "returned_votes"}

// Values returns the record as a row of cell values in RecordHeader order.
func (r Record) Values() []interface{} {
	return []interface{}{r.ReportDate, r.County, r.Gender, string(r.Party), r.ReturnedVotes}
}

// Report is the parsed content of one ballots-returned document.
type Report struct {
	SourceFile string
	ReportDate string
	Records    []Record
}
