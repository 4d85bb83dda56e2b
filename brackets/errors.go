package brackets

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrWinnerUndetermined = errors.New("winner not determined for this match")
	ErrSlotNotFound       = errors.New("no match found for the requested round")
)
