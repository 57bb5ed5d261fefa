// Package validation checks a parsed report for content a well-formed
// ballots-returned report never has.
package validation

import (
	"fmt"
	"strings"

	"fjacquet/co-early-votes/internal/models"
)

// Key identifies one record of a report.
type Key struct {
	County string
	Gender string
	Party  models.Party
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.County, k.Gender, k.Party)
}

// Issue describes one finding.
type Issue struct {
	Key     Key
	Message string
}

func (i Issue) String() string {
	return i.Key.String() + ": " + i.Message
}

// CheckRecords reports keys that appear more than once and counties that do
// not carry all eight party columns for a gender. Both usually mean a county
// cell was lost during extraction and its rows were filled into the previous
// county. Issues come back in first-seen order.
func CheckRecords(records []models.Record) []Issue {
	var issues []Issue

	seen := make(map[Key]int, len(records))
	var order []Key
	for _, rec := range records {
		key := Key{County: rec.County, Gender: rec.Gender, Party: rec.Party}
		if seen[key] == 0 {
			order = append(order, key)
		}
		seen[key]++
	}
	for _, key := range order {
		if n := seen[key]; n > 1 {
			issues = append(issues, Issue{Key: key, Message: fmt.Sprintf("appears %d times", n)})
		}
	}

	type group struct{ county, gender string }
	parties := make(map[group]int)
	var groups []group
	for _, key := range order {
		g := group{key.County, key.Gender}
		if _, ok := parties[g]; !ok {
			groups = append(groups, g)
		}
		parties[g]++
	}
	for _, g := range groups {
		if n := parties[g]; n != len(models.PartyColumns) {
			issues = append(issues, Issue{
				Key:     Key{County: g.county, Gender: g.gender},
				Message: fmt.Sprintf("has %d of %d parties", n, len(models.PartyColumns)),
			})
		}
	}

	return issues
}

// Summary joins issues into one line, listing at most limit of them.
func Summary(issues []Issue, limit int) string {
	if len(issues) == 0 {
		return ""
	}
	shown := issues
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	parts := make([]string, len(shown))
	for i, issue := range shown {
		parts[i] = issue.String()
	}
	s := strings.Join(parts, "; ")
	if len(shown) < len(issues) {
		s += fmt.Sprintf(" (and %d more)", len(issues)-len(shown))
	}
	return s
}
