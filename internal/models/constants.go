package models

// Header tokens used to recognise non-data rows in the report tables.
const (
	HeaderToken     = "COUNTY"
	SubHeaderToken  = "VOTER PARTY"
	SubtotalToken   = "TOTAL"
	ReportFileToken = "Ballot"
)

// Output naming
const (
	OutputFileSuffix = "-co-early-vote-totals"
	CSVExtension     = ".csv"
	XLSXExtension    = ".xlsx"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
