package connection

import (
	"errors"
	"log"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8         = 2
	backOffFactor     uint8         = 2
	writeWait         time.Duration = time.Second * 5
	maxIncomingBytes  int64         = 512
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

// Subscriber is one websocket connection listening to the shot feed.
// Subscribers never send anything meaningful; incoming frames are
// only read to notice the connection going away.
type Subscriber struct {
	id        string
	conn      *websocket.Conn
	createdAt time.Time

	// gorilla connections support a single concurrent writer
	writeMu sync.Mutex
}

func NewSubscriber(id string, conn *websocket.Conn) *Subscriber {
	conn.SetReadLimit(maxIncomingBytes)

	return &Subscriber{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
	}
}

func (s *Subscriber) Id() string {
	return s.id
}

func (s *Subscriber) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Println("high server load/traffic error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Println("close error:", err)
		return ConnLoopBreak
	}

	log.Println("unexpected error:", err)
	return ConnLoopBreak
}

// Writes to the connection of that subscriber, retrying
// timeouts with a linear back off.
func (s *Subscriber) writeToConnWithRetry(msg interface{}, msgType uint8) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var retries uint8

writeLoop:
	for {
		var err error
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))

		switch msgType {
		case MessageTypeJSON:
			err = s.conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = s.conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
		}

		if err == nil {
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries < maxWriteWsRetries {
				retries++
				log.Printf("writing to ws [%s] failed; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
				time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
				continue writeLoop
			}
			log.Printf("max retries reached for writing to ws [%s]: %s", s.conn.RemoteAddr().String(), err)
			return NewConnErr(ConnLoopBreak).AddDesc(err.Error())

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("breaking writeLoop due to: " + err.Error())
		}
	}
}

// Blocks until the peer goes away. Anything the peer sends is dropped.
func (s *Subscriber) drainUntilClosed() error {
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("subscriber [%s] read error: %s\n", s.id, err)
			}
			return err
		}
	}
}

func (s *Subscriber) close(code int, reason string) {
	s.writeMu.Lock()
	_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
	s.writeMu.Unlock()
	_ = s.conn.Close()
}
