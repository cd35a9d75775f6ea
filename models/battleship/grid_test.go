package battleship

import (
	"context"
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-http/internal/error"
)

const placedBoardText = `__________
__________
__________
_____D____
____RR____
__________
__B_______
__B_______
__B_____S_
CCCC____S_
`

func TestParseGridLayout(t *testing.T) {
	grid, err := ParseGrid(placedBoardText)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		c        Coordinates
		expected PositionState
	}{
		{name: "carrier bottom left", c: NewCoordinates(0, 0), expected: PositionStateCarrier},
		{name: "carrier end", c: NewCoordinates(3, 0), expected: PositionStateCarrier},
		{name: "submarine", c: NewCoordinates(8, 1), expected: PositionStateSubmarine},
		{name: "battleship top", c: NewCoordinates(2, 3), expected: PositionStateBattleship},
		{name: "cruiser", c: NewCoordinates(5, 4), expected: PositionStateCruiser},
		{name: "destroyer", c: NewCoordinates(5, 6), expected: PositionStateDestroyer},
		{name: "top right water", c: NewCoordinates(9, 9), expected: PositionStateEmpty},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := grid.At(test.c); got != test.expected {
				t.Fatalf("expected: %q\t got: %q", test.expected, got)
			}
		})
	}
}

func TestGridRoundTrip(t *testing.T) {
	grid, err := ParseGrid(placedBoardText)
	if err != nil {
		t.Fatal(err)
	}
	board := NewBoard("own_board.txt", grid, nil)

	// reach a mixed state of misses, hits and a sunk ship
	for _, c := range []Coordinates{{0, 0}, {9, 9}, {5, 6}, {8, 1}, {4, 4}} {
		if _, err := board.ResolveShot(context.Background(), c.X, c.Y); err != nil {
			t.Fatal(err)
		}
	}

	text, err := board.Snapshot().MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var reloaded Grid
	if err := reloaded.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if reloaded != board.Snapshot() {
		t.Fatalf("round trip mismatch\nexpected:\n%s\ngot:\n%s", board.Snapshot(), reloaded)
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expectedErr error
	}{
		{name: "too few rows", text: "__________\n", expectedErr: cerr.ErrInvalidGridShape},
		{name: "short row", text: "_________\n" + repeatRows(9), expectedErr: cerr.ErrInvalidGridShape},
		{name: "unknown glyph", text: "____Z_____\n" + repeatRows(9), expectedErr: cerr.ErrInvalidGlyph},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseGrid(test.text); !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected err: %v\t got: %v", test.expectedErr, err)
			}
		})
	}
}

func TestParseGridToleratesCRLF(t *testing.T) {
	text := ""
	for i := 0; i < GridSize; i++ {
		text += "__________\r\n"
	}
	grid, err := ParseGrid(text)
	if err != nil {
		t.Fatal(err)
	}
	if grid != NewGrid() {
		t.Fatal("expected an empty grid")
	}
}

func repeatRows(n int) string {
	rows := ""
	for i := 0; i < n; i++ {
		rows += "__________\n"
	}
	return rows
}
