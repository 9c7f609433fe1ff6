// internal/game/errors.go
package game

import "errors"

// Intent rejection errors. Each leaves game state untouched; the handler
// layer surfaces them to the offending player only.
var (
	ErrNotYourTurn        = errors.New("not your turn")
	ErrIllegalCard        = errors.New("card is not legal to play or not held")
	ErrInvalidColorChoice = errors.New("no wild color choice is pending for you")
	ErrDeckExhausted      = errors.New("draw pile and discard pile are exhausted")
	ErrRoundFinished      = errors.New("round has already finished")
	ErrUnknownPlayer      = errors.New("player is not part of this round")
)
