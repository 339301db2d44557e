package domain

import "errors"

// Failure conditions surfaced by GameState mutators. Caller-contract
// violations (bad index, wrong phase) and rule violations (illegal
// defense) share the same channel: the action is not applied and the
// state is unchanged.
var (
	ErrInvalidCardIndex  = errors.New("invalid card index")
	ErrInvalidDefense    = errors.New("invalid defense - card cannot beat the attack")
	ErrNothingToDefend   = errors.New("no undefended attacks to defend against")
	ErrEmptyTable        = errors.New("no cards on table to take")
	ErrWrongPhase        = errors.New("action not valid in current phase")
	ErrInvalidTableIndex = errors.New("invalid table index")
	ErrTooFewPlayers     = errors.New("not enough players to start")
)
