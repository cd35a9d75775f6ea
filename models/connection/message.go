package connection

import "time"

type NoPayload bool

// Message is the envelope of every frame sent on the event feed.
type Message[T any] struct {
	Code    uint8     `json:"code"`
	SentAt  time.Time `json:"sent_at"`
	Payload T         `json:"payload,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code, SentAt: time.Now().UTC()}
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}
