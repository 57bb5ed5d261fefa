package pdfparser

import (
	"math"
	"sort"
	"strings"

	"fjacquet/co-early-votes/internal/models"
	"fjacquet/co-early-votes/internal/textutils"

	"github.com/ledongthuc/pdf"
)

// phrase is a run of glyphs on one line that belong to the same cell.
type phrase struct {
	X   float64
	End float64
	Y   float64
	S   string
}

func (p phrase) center() float64 {
	return (p.X + p.End) / 2
}

// groupLines sorts glyphs top to bottom and splits them into lines. Glyphs
// whose baselines differ by less than tolerance share a line.
func groupLines(texts []pdf.Text, tolerance float64) [][]pdf.Text {
	glyphs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		glyphs = append(glyphs, t)
	}
	if len(glyphs) == 0 {
		return nil
	}

	// PDF user space grows upwards, so the top of the page has the largest Y.
	sort.SliceStable(glyphs, func(i, j int) bool {
		if glyphs[i].Y != glyphs[j].Y {
			return glyphs[i].Y > glyphs[j].Y
		}
		return glyphs[i].X < glyphs[j].X
	})

	var lines [][]pdf.Text
	lineY := glyphs[0].Y
	current := []pdf.Text{glyphs[0]}
	for _, g := range glyphs[1:] {
		if math.Abs(lineY-g.Y) < tolerance {
			current = append(current, g)
			continue
		}
		lines = append(lines, current)
		lineY = g.Y
		current = []pdf.Text{g}
	}
	lines = append(lines, current)

	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool { return line[i].X < line[j].X })
	}
	return lines
}

// mergePhrases joins the glyphs of one line into phrases. A glyph continues
// the current phrase when it starts within a word space of the previous end
// and has the same font size.
func mergePhrases(line []pdf.Text) []phrase {
	var phrases []phrase
	for k := 0; k < len(line); {
		ck := line[k]
		var b strings.Builder
		b.WriteString(ck.S)
		end := ck.X + ck.W
		charSpace := ck.FontSize / 6
		wordSpace := ck.FontSize * 2 / 3

		l := k + 1
		for l < len(line) {
			cl := line[l]
			if math.Abs(cl.FontSize-ck.FontSize) >= 0.1 {
				break
			}
			if cl.X <= end+charSpace {
				b.WriteString(cl.S)
			} else if cl.X <= end+wordSpace {
				b.WriteString(" ")
				b.WriteString(cl.S)
			} else {
				break
			}
			end = cl.X + cl.W
			l++
		}

		if s := textutils.NormalizeCell(b.String()); s != "" {
			phrases = append(phrases, phrase{X: ck.X, End: end, Y: ck.Y, S: s})
		}
		k = l
	}
	return phrases
}

// isHeaderLine reports whether a line is the COUNTY/GENDER/party header.
func isHeaderLine(phrases []phrase) bool {
	return len(phrases) > 1 && textutils.ContainsToken(phrases[0].S, models.HeaderToken)
}

// placeInColumns assigns each phrase to the header column whose center is
// nearest. Phrases sharing a column are joined with a space, and columns
// without a phrase stay empty.
func placeInColumns(phrases []phrase, anchors []phrase) []string {
	cells := make([]string, len(anchors))
	for _, p := range phrases {
		best := 0
		bestDist := math.Inf(1)
		for i, a := range anchors {
			if d := math.Abs(a.center() - p.center()); d < bestDist {
				best, bestDist = i, d
			}
		}
		if cells[best] == "" {
			cells[best] = p.S
		} else {
			cells[best] += " " + p.S
		}
	}
	return cells
}

// pageLayout carries header anchors from page to page, since continuation
// pages of the report repeat the same column geometry.
type pageLayout struct {
	rowTolerance float64
	anchors      []phrase
}

// buildTable converts a page's glyphs into rows of cells. Lines with a
// single phrase (titles, footers, page numbers) are not table rows. Lines
// above the first header line, and all lines when no header was ever seen,
// are split on phrase boundaries.
func (l *pageLayout) buildTable(texts []pdf.Text) [][]string {
	var rows [][]string
	for _, line := range groupLines(texts, l.rowTolerance) {
		phrases := mergePhrases(line)
		if len(phrases) < 2 {
			continue
		}
		if isHeaderLine(phrases) {
			l.anchors = phrases
		}

		if l.anchors == nil {
			cells := make([]string, len(phrases))
			for i, p := range phrases {
				cells[i] = p.S
			}
			rows = append(rows, cells)
			continue
		}
		rows = append(rows, placeInColumns(phrases, l.anchors))
	}
	return rows
}
