package service

import "errors"

// Sentinel errors for operations on ids that do not resolve. Unknown ids are
// reported instead of silently ignored so caller bugs surface immediately.
var (
	ErrInvalidSelection = errors.New("invalid team selection")
	ErrTeamNotFound     = errors.New("team not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrGameNotFound     = errors.New("game not found")
	ErrThemeNotFound    = errors.New("theme not found")
	ErrNoCurrentGame    = errors.New("no game in progress")
	ErrUnknownStat      = errors.New("unknown stat type")
	ErrUnknownSide      = errors.New("unknown team side")
)
