// SPDX-License-Identifier: MIT
// Package config: sentinel error set. Decode errors from the TOML parser are
// wrapped, not replaced.

package config

import "errors"

var (
	// ErrUnknownKey indicates a key the file format does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrBadDuration indicates a duration that does not parse or is negative.
	ErrBadDuration = errors.New("config: invalid duration")

	// ErrBadBool indicates an environment flag that is not a boolean.
	ErrBadBool = errors.New("config: invalid boolean")

	// ErrBadProbeDivisors indicates probe_divisors below 1.
	ErrBadProbeDivisors = errors.New("config: probe_divisors must be >= 1")

	// ErrBadLevel indicates an unknown log level name.
	ErrBadLevel = errors.New("config: invalid log level")
)
