// Package render formats board snapshots for people.
package render

import (
	"html"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-http/models/battleship"
)

// Lines returns one labeled line per row, y = 9 first, followed by
// the column footer.
func Lines(grid mb.Grid) []string {
	lines := make([]string, 0, mb.GridSize+1)

	for y := mb.ValidUpperBound; y >= mb.ValidLowerBound; y-- {
		cells := make([]string, 0, mb.GridSize+1)
		cells = append(cells, strconv.Itoa(y))
		for x := 0; x < mb.GridSize; x++ {
			cells = append(cells, string(rune(grid[x][y])))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	footer := make([]string, 0, mb.GridSize+1)
	footer = append(footer, "-")
	for x := 0; x < mb.GridSize; x++ {
		footer = append(footer, strconv.Itoa(x))
	}
	return append(lines, strings.Join(footer, " "))
}

func Text(grid mb.Grid) string {
	return strings.Join(Lines(grid), "\n") + "\n"
}

func HTML(grid mb.Grid) string {
	lines := Lines(grid)
	for i := range lines {
		lines[i] = html.EscapeString(lines[i])
	}
	return "<html>" + strings.Join(lines, "<br>") + "</html>"
}
