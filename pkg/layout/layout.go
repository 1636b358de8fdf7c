package layout

import (
	"sort"
	"strings"
)

// Fragment is a single positioned run of text from a statement's text layer.
type Fragment struct {
	Text string
	X    float64
	Y    float64
}

// yTolerance is how far apart two fragments' y coordinates may be while still
// counting as the same visual line, in PDF layout units.
const yTolerance = 3.0

type row struct {
	y     float64
	frags []Fragment
}

// Rows groups one page's fragments into visual lines and renders each line as
// a single space-joined string, top to bottom. Fragment order in the input is
// unreliable, so reading order is rebuilt from coordinates: rows by descending
// y (PDF y grows upward), fragments within a row by ascending x. A fragment
// joins the first open row whose seed y is within tolerance.
func Rows(frags []Fragment) []string {
	var rows []row
	for _, f := range frags {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		placed := false
		for i := range rows {
			if abs(rows[i].y-f.Y) < yTolerance {
				rows[i].frags = append(rows[i].frags, f)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: f.Y, frags: []Fragment{f}})
		}
	}

	// Stable sort keeps first-opened order for rows that ended up on the same y.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		sort.SliceStable(r.frags, func(i, j int) bool { return r.frags[i].X < r.frags[j].X })
		parts := make([]string, len(r.frags))
		for i, f := range r.frags {
			parts[i] = f.Text
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

// DocumentRows flattens per-page fragment sets into one row-string sequence,
// page order first, reading order within each page.
func DocumentRows(pages [][]Fragment) []string {
	var lines []string
	for _, page := range pages {
		lines = append(lines, Rows(page)...)
	}
	return lines
}

// Tokenize splits a row on runs of whitespace, dropping empty tokens.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
