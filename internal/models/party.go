package models

import "fmt"

// Party is one of the eight fixed vote-count columns of the report.
type Party string

// Parties reported by the county election authority.
const (
	PartyACN Party = "ACN"
	PartyAPV Party = "APV"
	PartyDEM Party = "DEM"
	PartyGRN Party = "GRN"
	PartyLBR Party = "LBR"
	PartyREP Party = "REP"
	PartyUAF Party = "UAF"
	PartyUNI Party = "UNI"
)

// String implements fmt.Stringer.
func (p Party) String() string {
	return string(p)
}

// MarshalCSV implements gocsv's TypeMarshaller.
func (p Party) MarshalCSV() (string, error) {
	return string(p), nil
}

// ParseParty returns the Party for a column name.
func ParseParty(s string) (Party, error) {
	for _, col := range PartyColumns {
		if string(col.Party) == s {
			return col.Party, nil
		}
	}
	return "", fmt.Errorf("unknown party %q", s)
}

// UnmarshalCSV implements gocsv's TypeUnmarshaller.
func (p *Party) UnmarshalCSV(s string) error {
	party, err := ParseParty(s)
	if err != nil {
		return err
	}
	*p = party
	return nil
}
