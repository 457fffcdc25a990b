package game

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoBoard         = errors.New("no board issued for session")
	ErrClaimCooldown   = errors.New("bingo claim cooldown active")
)
