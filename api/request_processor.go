package api

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-http/db/sqlc"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
	mc "github.com/saeidalz13/battleship-http/models/connection"
	"github.com/saeidalz13/battleship-http/render"
)

const (
	PathOwnBoard      string = "/own_board.html"
	PathOpponentBoard string = "/opponent_board.html"
	PathEvents        string = "/events"

	// coordinates may be arbitrarily wide integers
	maxShotBodyBytes int64 = 1 << 20
)

var upgrader = websocket.Upgrader{

	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// the feed only carries small JSON frames
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RequestProcessor struct {
	game      *mb.Game
	hub       mc.EventHub
	analytics *sqlc.AnalyticsManager
	encoder   OutcomeEncoder
}

var _ http.Handler = (*RequestProcessor)(nil)

// hub and analytics may be nil, which disables the event feed and shot
// analytics respectively. A nil encoder means the reason phrase encoding.
func NewRequestProcessor(
	game *mb.Game,
	hub mc.EventHub,
	analytics *sqlc.AnalyticsManager,
	encoder OutcomeEncoder,
) *RequestProcessor {
	if encoder == nil {
		encoder = ReasonPhraseEncoder{}
	}

	return &RequestProcessor{
		game:      game,
		hub:       hub,
		analytics: analytics,
		encoder:   encoder,
	}
}

func (rp *RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set(mc.HeaderRequestID, requestID)
	log.Printf("[%s] %s %s\tRemote Addr: %s\n", requestID, r.Method, r.URL.Path, r.RemoteAddr)

	switch r.Method {
	case http.MethodPost:
		rp.handleShot(w, r, requestID)

	case http.MethodGet:
		rp.handleGet(w, r)

	case http.MethodHead:
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)

	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// Shots are accepted on any path.
func (rp *RequestProcessor) handleShot(w http.ResponseWriter, r *http.Request, requestID string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxShotBodyBytes)

	coords, err := NewRequest(r).ParseShot()
	if err != nil {
		rp.reject(w, requestID, err)
		return
	}

	outcome, err := rp.game.Own.ResolveShot(r.Context(), coords.X, coords.Y)
	if err != nil {
		rp.reject(w, requestID, err)
		return
	}

	log.Printf("[%s] shot x: %d\ty: %d\toutcome: %s\n", requestID, coords.X, coords.Y, outcome)
	if err := rp.encoder.WriteOutcome(w, r, outcome); err != nil {
		// the board has already changed; the shot stands even if the
		// attacker never hears about it
		log.Printf("[%s] failed to write outcome: %s\n", requestID, err)
	}

	rp.publishShot(r, requestID, coords, outcome)
}

func (rp *RequestProcessor) reject(w http.ResponseWriter, requestID string, err error) {
	status := statusFromErr(err)
	log.Printf("[%s] rejected with %d: %s\n", requestID, status, err)
	http.Error(w, http.StatusText(status), status)
}

// Feed and analytics are best effort; neither can fail a shot.
func (rp *RequestProcessor) publishShot(r *http.Request, requestID string, coords mb.Coordinates, outcome mb.Outcome) {
	fleetSunk := outcome.IsSunk() && rp.game.Own.IsFleetSunk()

	if rp.hub != nil {
		msg := mc.NewMessage[mc.RespShot](mc.CodeShotResolved)
		msg.AddPayload(mc.NewRespShot(rp.game.Uuid, requestID, coords, outcome, fleetSunk))
		rp.hub.Broadcast(msg, mc.MessageTypeJSON)

		if fleetSunk {
			log.Printf("[%s] fleet sunk, game %s is over\n", requestID, rp.game.Uuid)
			rp.hub.Broadcast(mc.NewMessage[mc.NoPayload](mc.CodeFleetSunk), mc.MessageTypeJSON)
		}
	}

	if rp.analytics != nil {
		serverIpNet, err := getServerIpNet(r)
		if err != nil {
			log.Printf("[%s] analytics skipped: %s\n", requestID, err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
		defer cancel()
		if err := rp.analytics.RecordShot(ctx, pqtype.Inet{IPNet: serverIpNet, Valid: true}, outcome); err != nil {
			// for now not failing the shot for it
			log.Printf("[%s] analytics: %s\n", requestID, err)
		}
	}
}

func (rp *RequestProcessor) handleGet(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case PathOwnBoard:
		writeHTML(w, render.HTML(rp.game.Own.Snapshot()))

	case PathOpponentBoard:
		// the client process writes this board, so always reload it
		if err := rp.game.Opponent.Refresh(r.Context()); err != nil {
			log.Printf("failed to reload %s: %s\n", rp.game.Opponent.Name(), err)
		}
		writeHTML(w, render.HTML(rp.game.Opponent.Snapshot()))

	case PathEvents:
		rp.handleEvents(w, r)

	default:
		writeHTML(w, "")
	}
}

func (rp *RequestProcessor) handleEvents(w http.ResponseWriter, r *http.Request) {
	if rp.hub == nil {
		http.Error(w, "event feed disabled", http.StatusNotFound)
		return
	}

	// Upgrade replies with an error status itself on failure
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	subscriber := rp.hub.Subscribe(conn)
	log.Println("a new subscriber connected\tRemote Addr: ", conn.RemoteAddr().String())

	resp := mc.NewMessage[mc.RespSubscriberId](mc.CodeSubscriberID)
	resp.AddPayload(mc.RespSubscriberId{SubscriberID: subscriber.Id()})
	if err := rp.hub.WriteToSubscriber(subscriber, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	snapshot := mc.NewMessage[mc.RespBoardSnapshot](mc.CodeBoardSnapshot)
	snapshot.AddPayload(mc.RespBoardSnapshot{GameUuid: rp.game.Uuid, Board: render.Text(rp.game.Own.Snapshot())})
	if err := rp.hub.WriteToSubscriber(subscriber, snapshot, mc.MessageTypeJSON); err != nil {
		return
	}

	rp.hub.ReadUntilClosed(subscriber)
}

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func getServerIpNet(r *http.Request) (net.IPNet, error) {
	localAddr, ok := r.Context().Value(http.LocalAddrContextKey).(net.Addr)
	if !ok {
		return net.IPNet{}, errNoLocalAddr
	}

	host, _, err := net.SplitHostPort(localAddr.String())
	if err != nil {
		return net.IPNet{}, err
	}

	ip := net.ParseIP(host)
	if ip4 := ip.To4(); ip4 != nil {
		return net.IPNet{IP: ip4, Mask: net.CIDRMask(32, 32)}, nil
	}
	return net.IPNet{IP: ip, Mask: net.CIDRMask(128, 128)}, nil
}
