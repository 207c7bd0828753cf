package game

import (
	"errors"
	"fmt"
)

var (
	ErrGameOver = errors.New("game is over")
	// ErrInvariant marks states the action selector must never produce.
	// Surfacing it means a rules bug, not a recoverable condition.
	ErrInvariant = errors.New("engine invariant violation")
)

// ConfigurationError reports an invalid game setup. No partial run occurs
// once one is returned.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}
