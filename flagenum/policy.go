package flagenum

import (
	"log/slog"

	"github.com/roach88/smartenum/enum"
)

// Policy holds the capability markers of a flag set.
// It is fixed when the set is created.
type Policy struct {
	// AllowNegativeInput accepts negative values (and the all-ones sentinel)
	// as decomposition input.
	AllowNegativeInput bool

	// AllowUnsafeValues exempts definitions from the power-of-two and
	// contiguity rules.
	AllowUnsafeValues bool
}

// Option configures a Set.
type Option func(*config)

type config struct {
	policy   Policy
	enumOpts []enum.Option
}

// AllowNegativeInput marks the set as accepting negative input.
func AllowNegativeInput() Option {
	return func(c *config) {
		c.policy.AllowNegativeInput = true
	}
}

// AllowUnsafeValues marks the set as accepting non-power-of-two and
// non-contiguous flag values.
func AllowUnsafeValues() Option {
	return func(c *config) {
		c.policy.AllowUnsafeValues = true
	}
}

// WithPolicy replaces the whole policy. Useful when the markers come from
// configuration rather than code.
func WithPolicy(p Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithLogger sets the logger for the set and its registry.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.enumOpts = append(c.enumOpts, enum.WithLogger(logger))
	}
}
