package connection

import (
	"net/url"

	cerr "github.com/saeidalz13/battleship-http/internal/error"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
)

const (
	OutcomeKeyHit  string = "hit"
	OutcomeKeySink string = "sink"
)

// EncodeOutcome renders an outcome as hit=0, hit=1 or hit=1&sink=<code>.
// The token is query-string shaped but key order is fixed, so it is
// built by hand rather than with url.Values.Encode (which sorts keys).
func EncodeOutcome(outcome mb.Outcome) string {
	if !outcome.Hit {
		return OutcomeKeyHit + "=0"
	}
	if outcome.IsSunk() {
		return OutcomeKeyHit + "=1&" + OutcomeKeySink + "=" + string(rune(outcome.Sunk))
	}
	return OutcomeKeyHit + "=1"
}

func DecodeOutcome(token string) (mb.Outcome, error) {
	values, err := url.ParseQuery(token)
	if err != nil {
		return mb.OutcomeMiss, cerr.ErrUndecodableOutcome(token)
	}

	var outcome mb.Outcome
	switch values.Get(OutcomeKeyHit) {
	case "0":
		outcome = mb.OutcomeMiss
	case "1":
		outcome = mb.OutcomeHit
	default:
		return mb.OutcomeMiss, cerr.ErrUndecodableOutcome(token)
	}

	if !values.Has(OutcomeKeySink) {
		return outcome, nil
	}

	sink := values.Get(OutcomeKeySink)
	if !outcome.Hit || len(sink) != 1 || !mb.IsShip(mb.PositionState(sink[0])) {
		return mb.OutcomeMiss, cerr.ErrUndecodableOutcome(token)
	}
	return mb.OutcomeSunk(mb.PositionState(sink[0])), nil
}
