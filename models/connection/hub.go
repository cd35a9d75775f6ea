package connection

import (
	"context"
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-http/internal/error"
)

type EventHub interface {
	Subscribe(conn *websocket.Conn) *Subscriber
	Unsubscribe(subscriberId string)
	FindSubscriber(subscriberId string) (*Subscriber, error)
	WriteToSubscriber(subscriber *Subscriber, msg interface{}, msgType uint8) error
	ReadUntilClosed(subscriber *Subscriber)
	Broadcast(msg interface{}, msgType uint8) int
	Count() int
	CleanupPeriodically(ctx context.Context)
	Close()
}

type ShotFeedHub struct {
	cleanupInterval time.Duration
	subscribers     map[string]*Subscriber
	mu              sync.RWMutex
}

var _ EventHub = (*ShotFeedHub)(nil)

func NewShotFeedHub() *ShotFeedHub {
	initMapSize := 10

	return &ShotFeedHub{
		subscribers:     make(map[string]*Subscriber, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

func (h *ShotFeedHub) Subscribe(conn *websocket.Conn) *Subscriber {
	subscriberId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	subscriber := NewSubscriber(subscriberId, conn)

	h.mu.Lock()
	h.subscribers[subscriberId] = subscriber
	h.mu.Unlock()

	return subscriber
}

func (h *ShotFeedHub) Unsubscribe(subscriberId string) {
	h.mu.Lock()
	subscriber, prs := h.subscribers[subscriberId]
	delete(h.subscribers, subscriberId)
	h.mu.Unlock()

	if prs {
		_ = subscriber.conn.Close()
	}
}

func (h *ShotFeedHub) FindSubscriber(subscriberId string) (*Subscriber, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subscriber, prs := h.subscribers[subscriberId]
	if !prs {
		return nil, cerr.ErrSubscriberNotFound(subscriberId)
	}
	return subscriber, nil
}

// A subscriber whose connection cannot be written to is dropped.
func (h *ShotFeedHub) WriteToSubscriber(subscriber *Subscriber, msg interface{}, msgType uint8) error {
	if err := subscriber.writeToConnWithRetry(msg, msgType); err != nil {
		h.Unsubscribe(subscriber.id)
		return err
	}
	return nil
}

func (h *ShotFeedHub) ReadUntilClosed(subscriber *Subscriber) {
	_ = subscriber.drainUntilClosed()
	h.Unsubscribe(subscriber.id)
}

// Broadcast writes msg to every subscriber and returns how many
// received it.
func (h *ShotFeedHub) Broadcast(msg interface{}, msgType uint8) int {
	h.mu.RLock()
	receivers := make([]*Subscriber, 0, len(h.subscribers))
	for _, subscriber := range h.subscribers {
		receivers = append(receivers, subscriber)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, subscriber := range receivers {
		if err := h.WriteToSubscriber(subscriber, msg, msgType); err != nil {
			log.Printf("dropped subscriber [%s]: %s\n", subscriber.id, err)
			continue
		}
		delivered++
	}
	return delivered
}

func (h *ShotFeedHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// To ensure that there is no dangling connections, subscribers
// older than the cleanup interval are marked stale and removed.
func (h *ShotFeedHub) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(h.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		h.mu.Lock()
		toDelete := make([]*Subscriber, 0)
		for id, subscriber := range h.subscribers {
			if time.Since(subscriber.createdAt) > h.cleanupInterval {
				toDelete = append(toDelete, subscriber)
				delete(h.subscribers, id)
			}
		}
		h.mu.Unlock()

		for _, subscriber := range toDelete {
			subscriber.close(websocket.CloseNormalClosure, "subscription expired")
			log.Printf("removed stale subscriber: %s", subscriber.id)
		}
	}
}

// Close tells every subscriber the feed is over and drops them all.
func (h *ShotFeedHub) Close() {
	h.mu.Lock()
	subscribers := h.subscribers
	h.subscribers = make(map[string]*Subscriber)
	h.mu.Unlock()

	for _, subscriber := range subscribers {
		_ = subscriber.writeToConnWithRetry(NewMessage[NoPayload](CodeFeedClosed), MessageTypeJSON)
		subscriber.close(websocket.CloseGoingAway, "server shutting down")
	}
}
