package dispatch

import "errors"

var (
	// ErrBusy is returned when a trigger arrives while a game is open.
	ErrBusy = errors.New("dispatch: a game is already open")

	// ErrNotSelecting is returned when selecting or cancelling outside the menu.
	ErrNotSelecting = errors.New("dispatch: not selecting")

	// ErrNotPlaying is returned when dismissing with no game bound.
	ErrNotPlaying = errors.New("dispatch: not playing")

	// ErrUnknownGame is returned for an unregistered game ID.
	ErrUnknownGame = errors.New("dispatch: unknown game")
)
