package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-http/internal/error"
	mb "github.com/saeidalz13/battleship-http/models/battleship"
	mc "github.com/saeidalz13/battleship-http/models/connection"
)

// Request wraps an incoming shot. Parsing is pure: nothing here
// touches the board.
type Request struct {
	r *http.Request
}

func NewRequest(r *http.Request) Request {
	return Request{r: r}
}

// ParseShot extracts x and y from the form body. Both are parsed before
// either is range checked, so a malformed value always wins over an out
// of range one.
func (req Request) ParseShot() (mb.Coordinates, error) {
	if err := req.r.ParseForm(); err != nil {
		return mb.Coordinates{}, cerr.ErrUnreadableForm(err)
	}
	form := req.r.PostForm

	x, xErr := parseCoordinate(form, mc.FormKeyX)
	y, yErr := parseCoordinate(form, mc.FormKeyY)

	for _, err := range []error{xErr, yErr} {
		if errors.Is(err, cerr.ErrMalformedInput) {
			return mb.Coordinates{}, err
		}
	}
	for _, err := range []error{xErr, yErr} {
		if err != nil {
			return mb.Coordinates{}, err
		}
	}

	coords := mb.NewCoordinates(x, y)
	if !coords.InBounds() {
		return mb.Coordinates{}, cerr.ErrXorYOutOfGridBound(x, y)
	}
	return coords, nil
}

// Integers too wide for int are still integers; they just cannot be
// on the grid.
func parseCoordinate(form url.Values, key string) (int, error) {
	values, prs := form[key]
	if !prs || len(values) == 0 {
		return 0, cerr.ErrCoordinateMissing(key)
	}

	raw := strings.TrimSpace(values[0])
	value, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, cerr.ErrCoordinateOutOfRange(key, raw)
		}
		return 0, cerr.ErrCoordinateNotInt(key, raw)
	}
	return value, nil
}
