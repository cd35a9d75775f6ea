package battleship

// Outcome of resolving one shot. Sunk holds the code of the ship
// the shot finished off, or zero.
type Outcome struct {
	Hit  bool
	Sunk PositionState
}

var (
	OutcomeMiss = Outcome{}
	OutcomeHit  = Outcome{Hit: true}
)

func OutcomeSunk(code PositionState) Outcome {
	return Outcome{Hit: true, Sunk: code}
}

func (o Outcome) IsSunk() bool {
	return o.Sunk != 0
}

func (o Outcome) String() string {
	switch {
	case o.IsSunk():
		return "hit, sunk " + Fleet[o.Sunk].Name
	case o.Hit:
		return "hit"
	default:
		return "miss"
	}
}
