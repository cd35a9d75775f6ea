package connection

import (
	mb "github.com/saeidalz13/battleship-http/models/battleship"
)

type RespSubscriberId struct {
	SubscriberID string `json:"subscriber_id"`
}

type RespBoardSnapshot struct {
	GameUuid string `json:"game_uuid"`
	Board    string `json:"board"`
}

type RespShot struct {
	GameUuid  string `json:"game_uuid"`
	RequestID string `json:"request_id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Hit       bool   `json:"hit"`
	Sink      string `json:"sink,omitempty"`
	Outcome   string `json:"outcome"`
	FleetSunk bool   `json:"fleet_sunk"`
}

func NewRespShot(gameUuid, requestID string, c mb.Coordinates, outcome mb.Outcome, fleetSunk bool) RespShot {
	resp := RespShot{
		GameUuid:  gameUuid,
		RequestID: requestID,
		X:         c.X,
		Y:         c.Y,
		Hit:       outcome.Hit,
		Outcome:   EncodeOutcome(outcome),
		FleetSunk: fleetSunk,
	}
	if outcome.IsSunk() {
		resp.Sink = string(rune(outcome.Sunk))
	}
	return resp
}
