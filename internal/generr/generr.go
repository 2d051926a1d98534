// Package generr holds the error kinds shared by the generation stages.
package generr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks parameters that violate a generator's
	// preconditions. It is always returned before any generation work starts.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvariant marks a logic defect detected after a stage ran, such as
	// biome weights that do not sum to one or a cell left unclaimed by the
	// flood fill.
	ErrInvariant = errors.New("invariant violation")
)

// Configf returns an error wrapping ErrConfiguration.
func Configf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// Invariantf returns an error wrapping ErrInvariant.
func Invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
