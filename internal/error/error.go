package error

import (
	"errors"
	"fmt"
)

// Kinds of failure. Handlers classify with errors.Is and every
// constructor below wraps exactly one of these.
var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrOutOfBounds      = errors.New("out of bounds")
	ErrAlreadyTargeted  = errors.New("already targeted")
	ErrPersistence      = errors.New("persistence failure")
	ErrTransport        = errors.New("transport failure")
	ErrBoardNotFound    = errors.New("board not found")
	ErrInvalidGlyph     = errors.New("invalid glyph")
	ErrInvalidGridShape = errors.New("invalid grid shape")
	ErrInvalidOutcome   = errors.New("invalid outcome")
)

func ErrCoordinateMissing(key string) error {
	return fmt.Errorf("%w: the key does not exist:\t%s", ErrMalformedInput, key)
}

func ErrCoordinateNotInt(key, value string) error {
	return fmt.Errorf("%w: the value of %s is not an integer:\t%q", ErrMalformedInput, key, value)
}

func ErrUnreadableForm(err error) error {
	return fmt.Errorf("%w: cannot read form body: %v", ErrMalformedInput, err)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w: incoming x or y is out of game grid bound\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrCoordinateOutOfRange(key, value string) error {
	return fmt.Errorf("%w: the value of %s does not fit the game grid:\t%s", ErrOutOfBounds, key, value)
}

func ErrPositionAlreadyTargeted(x, y int) error {
	return fmt.Errorf("%w: this position is already hit by the attacker in previous rounds\tx: %d\ty: %d", ErrAlreadyTargeted, x, y)
}

func ErrSaveBoard(name string, err error) error {
	return fmt.Errorf("%w: failed to save board %s: %w", ErrPersistence, name, err)
}

func ErrBoardNotExist(name string) error {
	return fmt.Errorf("%w: board with this name does not exist, name: %s", ErrBoardNotFound, name)
}

func ErrUnknownGlyph(glyph byte, x, y int) error {
	return fmt.Errorf("%w: %q\tx: %d\ty: %d", ErrInvalidGlyph, glyph, x, y)
}

func ErrGridRows(rows int) error {
	return fmt.Errorf("%w: expected 10 rows, got %d", ErrInvalidGridShape, rows)
}

func ErrGridColumns(row, columns int) error {
	return fmt.Errorf("%w: expected 10 columns in row %d, got %d", ErrInvalidGridShape, row, columns)
}

func ErrUndecodableOutcome(token string) error {
	return fmt.Errorf("%w: cannot decode outcome token %q", ErrInvalidOutcome, token)
}

func ErrRequestFailed(host, port string, err error) error {
	return fmt.Errorf("%w: request to %s:%s failed: %v", ErrTransport, host, port, err)
}

func ErrSubscriberNotFound(subscriberId string) error {
	return fmt.Errorf("subscriber not found: %s", subscriberId)
}
