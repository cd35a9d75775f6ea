package client

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	cerr "github.com/saeidalz13/battleship-http/internal/error"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
	mc "github.com/saeidalz13/battleship-http/models/connection"
)

const (
	requestTimeout     time.Duration = time.Second * 10
	maxOutcomeBodySize int64         = 1 << 10
)

// Result is what the server said about one shot. Outcome is nil unless
// the shot was accepted.
type Result struct {
	Status     string
	StatusCode int
	Outcome    *mb.Outcome
}

type Client struct {
	board      *mb.Board
	httpClient *http.Client
}

// board is the local view of the opponent's board.
func NewClient(board *mb.Board, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{board: board, httpClient: httpClient}
}

// FireShot sends one shot and, when it is accepted, records the outcome on
// the local opponent board. Rejections come back in Result with no board
// change; only transport and local persistence problems are errors.
func (c *Client) FireShot(ctx context.Context, host, port string, x, y int) (Result, error) {
	form := url.Values{}
	form.Set(mc.FormKeyX, strconv.Itoa(x))
	form.Set(mc.FormKeyY, strconv.Itoa(y))

	target := url.URL{Scheme: "http", Host: net.JoinHostPort(host, port), Path: "/"}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, cerr.ErrRequestFailed(host, port, err)
	}
	req.Header.Set("Content-Type", mc.ContentTypeForm)
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, cerr.ErrRequestFailed(host, port, err)
	}
	defer resp.Body.Close()

	result := Result{Status: resp.Status, StatusCode: resp.StatusCode}
	if resp.StatusCode != http.StatusOK {
		return result, nil
	}

	outcome, err := decodeResponse(resp)
	if err != nil {
		return result, err
	}
	result.Outcome = &outcome

	if err := c.board.ApplyObservedOutcome(ctx, outcome, x, y); err != nil {
		return result, err
	}
	log.Printf("recorded %s at x: %d\ty: %d on %s\n", outcome, x, y, c.board.Name())
	return result, nil
}

// The outcome normally rides in the reason phrase; servers that cannot
// set one send it in a header or the body instead.
func decodeResponse(resp *http.Response) (mb.Outcome, error) {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if outcome, err := mc.DecodeOutcome(reason); err == nil {
		return outcome, nil
	}

	if token := resp.Header.Get(mc.HeaderShotOutcome); token != "" {
		return mc.DecodeOutcome(token)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxOutcomeBodySize))
	if err != nil {
		return mb.OutcomeMiss, err
	}
	return mc.DecodeOutcome(strings.TrimSpace(string(body)))
}
