package domain

import "errors"

var (
	// ErrConfiguration flags an invalid puzzle request or a malformed
	// state handed in by a caller. Never retried internally.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidMove flags a move that is not legal on the state it
	// was applied to. The state is left untouched.
	ErrInvalidMove = errors.New("invalid move")
)
