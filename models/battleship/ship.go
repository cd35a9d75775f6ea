package battleship

// Ship codes in the defence grid. The code doubles as the
// glyph the board is persisted with.
const (
	PositionStateCarrier    PositionState = 'C'
	PositionStateBattleship PositionState = 'B'
	PositionStateCruiser    PositionState = 'R'
	PositionStateSubmarine  PositionState = 'S'
	PositionStateDestroyer  PositionState = 'D'
)

type Ship struct {
	Code   PositionState
	Name   string
	Length int
}

// Fleet is the fixed set of ship types a board can hold.
var Fleet = map[PositionState]Ship{
	PositionStateCarrier:    {Code: PositionStateCarrier, Name: "Carrier", Length: 4},
	PositionStateBattleship: {Code: PositionStateBattleship, Name: "Battleship", Length: 3},
	PositionStateCruiser:    {Code: PositionStateCruiser, Name: "Cruiser", Length: 2},
	PositionStateSubmarine:  {Code: PositionStateSubmarine, Name: "Submarine", Length: 2},
	PositionStateDestroyer:  {Code: PositionStateDestroyer, Name: "Destroyer", Length: 1},
}

func IsShip(state PositionState) bool {
	_, prs := Fleet[state]
	return prs
}

func ShipLength(code PositionState) int {
	return Fleet[code].Length
}
