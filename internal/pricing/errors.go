package pricing

import (
	"errors"
)

// ErrMissingConfiguration is returned when a calculation's required setting
// key has no row in the settings store. Callers must treat this as a distinct
// condition; there are no default values.
var ErrMissingConfiguration = errors.New("missing required configuration")
