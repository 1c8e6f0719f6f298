package mines

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds marks coordinates outside the board. The UI clamps its
// cursor, so seeing this error means an invariant was broken somewhere.
var ErrOutOfBounds = errors.New("cell out of bounds")

type InvalidConfigurationError struct {
	Params GameParams
	Reason string
}

// [InvalidConfigurationError] implements [error]
func (e InvalidConfigurationError) Error() string {
	return fmt.Sprintf(
		"invalid game configuration %s: %s", e.Params.Seed(), e.Reason,
	)
}
