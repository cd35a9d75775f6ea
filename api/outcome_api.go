package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/saeidalz13/battleship-http/internal/config"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
	mc "github.com/saeidalz13/battleship-http/models/connection"
)

// OutcomeEncoder writes the success response of a resolved shot.
type OutcomeEncoder interface {
	WriteOutcome(w http.ResponseWriter, r *http.Request, outcome mb.Outcome) error
}

func NewOutcomeEncoder(encoding string) (OutcomeEncoder, error) {
	switch encoding {
	case "", config.EncodingReason:
		return ReasonPhraseEncoder{}, nil
	case config.EncodingBody:
		return BodyEncoder{}, nil
	default:
		return nil, fmt.Errorf("invalid outcome encoding: %s", encoding)
	}
}

// ReasonPhraseEncoder carries the outcome in the status line, e.g.
// "HTTP/1.1 200 hit=1&sink=C". ResponseWriter always writes the
// standard reason phrase, so the connection is hijacked and the
// response written by hand. Writers that cannot be hijacked get the
// body encoding instead.
type ReasonPhraseEncoder struct{}

func (ReasonPhraseEncoder) WriteOutcome(w http.ResponseWriter, r *http.Request, outcome mb.Outcome) error {
	hj, ok := w.(http.Hijacker)
	if !ok {
		return BodyEncoder{}.WriteOutcome(w, r, outcome)
	}

	header := w.Header().Clone()
	conn, buf, err := hj.Hijack()
	if err != nil {
		return err
	}
	defer conn.Close()

	token := mc.EncodeOutcome(outcome)
	header.Set("Content-Type", "text/html")
	header.Set("Content-Length", "0")
	header.Set("Connection", "close")
	header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	header.Set(mc.HeaderShotOutcome, token)

	if _, err := fmt.Fprintf(buf, "HTTP/%d.%d %d %s\r\n", r.ProtoMajor, r.ProtoMinor, http.StatusOK, token); err != nil {
		return err
	}
	if err := header.Write(buf); err != nil {
		return err
	}
	if _, err := buf.WriteString("\r\n"); err != nil {
		return err
	}
	return buf.Flush()
}

// BodyEncoder keeps the standard status line and sends the outcome
// token as the body and in the X-Shot-Outcome header.
type BodyEncoder struct{}

func (BodyEncoder) WriteOutcome(w http.ResponseWriter, r *http.Request, outcome mb.Outcome) error {
	token := mc.EncodeOutcome(outcome)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(mc.HeaderShotOutcome, token)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(token)); err != nil {
		return err
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
