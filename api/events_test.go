package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	mc "github.com/saeidalz13/battleship-http/models/connection"
)

func dialFeed(t *testing.T, serverUrl string) *websocket.Conn {
	t.Helper()

	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.Dial("ws"+strings.TrimPrefix(serverUrl, "http")+PathEvents, nil)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func readFrame[T any](t *testing.T, conn *websocket.Conn) mc.Message[T] {
	t.Helper()

	var msg mc.Message[T]
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	return msg
}

func TestEventFeed(t *testing.T) {
	game, _ := newTestGame(t)
	hub := mc.NewShotFeedHub()
	server := newTestServer(t, NewRequestProcessor(game, hub, nil, nil))

	conn := dialFeed(t, server.URL)
	defer conn.Close()

	respId := readFrame[mc.RespSubscriberId](t, conn)
	if respId.Code != mc.CodeSubscriberID || respId.Payload.SubscriberID == "" {
		t.Fatalf("expected subscriber id frame\tgot: %+v", respId)
	}

	snapshot := readFrame[mc.RespBoardSnapshot](t, conn)
	if snapshot.Code != mc.CodeBoardSnapshot {
		t.Fatalf("expected code: %d\t got: %d", mc.CodeBoardSnapshot, snapshot.Code)
	}
	if snapshot.Payload.GameUuid != game.Uuid || !strings.Contains(snapshot.Payload.Board, "0 C C C C _") {
		t.Fatalf("unexpected snapshot: %+v", snapshot.Payload)
	}
	if hub.Count() != 1 {
		t.Fatalf("expected subscribers: %d\t got: %d", 1, hub.Count())
	}

	tests := []struct {
		name           string
		x, y           int
		expectedStatus int
		expected       mc.RespShot
	}{
		{name: "destroyer sinks", x: 3, y: 4, expectedStatus: http.StatusOK, expected: mc.RespShot{X: 3, Y: 4, Hit: true, Sink: "D", Outcome: "hit=1&sink=D"}},
		{name: "rejected shot is not broadcast", x: 3, y: 4, expectedStatus: http.StatusGone},
		{name: "miss", x: 9, y: 9, expectedStatus: http.StatusOK, expected: mc.RespShot{X: 9, Y: 9, Outcome: "hit=0"}},
		{name: "carrier 1", x: 0, y: 0, expectedStatus: http.StatusOK, expected: mc.RespShot{X: 0, Y: 0, Hit: true, Outcome: "hit=1"}},
		{name: "carrier 2", x: 1, y: 0, expectedStatus: http.StatusOK, expected: mc.RespShot{X: 1, Y: 0, Hit: true, Outcome: "hit=1"}},
		{name: "carrier 3", x: 2, y: 0, expectedStatus: http.StatusOK, expected: mc.RespShot{X: 2, Y: 0, Hit: true, Outcome: "hit=1"}},
		{name: "last ship sinks", x: 3, y: 0, expectedStatus: http.StatusOK, expected: mc.RespShot{X: 3, Y: 0, Hit: true, Sink: "C", Outcome: "hit=1&sink=C", FleetSunk: true}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp := postShot(t, server.URL, shotForm(test.x, test.y))
			if resp.StatusCode != test.expectedStatus {
				t.Fatalf("expected status: %d\t got: %d", test.expectedStatus, resp.StatusCode)
			}
			if test.expectedStatus != http.StatusOK {
				return
			}

			msg := readFrame[mc.RespShot](t, conn)
			if msg.Code != mc.CodeShotResolved {
				t.Fatalf("expected code: %d\t got: %d", mc.CodeShotResolved, msg.Code)
			}

			got := msg.Payload
			if got.GameUuid != game.Uuid || got.RequestID == "" {
				t.Fatalf("expected game uuid %s and a request id\tgot: %+v", game.Uuid, got)
			}
			got.GameUuid, got.RequestID = "", ""
			if got != test.expected {
				t.Fatalf("expected payload: %+v\t got: %+v", test.expected, got)
			}
		})
	}

	fleetSunk := readFrame[mc.NoPayload](t, conn)
	if fleetSunk.Code != mc.CodeFleetSunk {
		t.Fatalf("expected code: %d\t got: %d", mc.CodeFleetSunk, fleetSunk.Code)
	}
}

func TestEventFeedUnsubscribesOnClose(t *testing.T) {
	game, _ := newTestGame(t)
	hub := mc.NewShotFeedHub()
	server := newTestServer(t, NewRequestProcessor(game, hub, nil, nil))

	conn := dialFeed(t, server.URL)
	readFrame[mc.RespSubscriberId](t, conn)
	readFrame[mc.RespBoardSnapshot](t, conn)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for hub.Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected subscriber to be removed\tgot: %d", hub.Count())
		}
		time.Sleep(10 * time.Millisecond)
	}

	// nobody listening; the shot still resolves
	resp := postShot(t, server.URL, shotForm(5, 5))
	if resp.Status != "200 hit=0" {
		t.Fatalf("expected status line: %q\t got: %q", "200 hit=0", resp.Status)
	}
}
