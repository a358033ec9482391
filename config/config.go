// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlbits/operator"
)

// Environment variable names.
const (
	EnvSlowThreshold   = "LVLBITS_SLOW_THRESHOLD"
	EnvExpansionBudget = "LVLBITS_EXPANSION_BUDGET"
	EnvSelfCheck       = "LVLBITS_SELF_CHECK"
	EnvProbeDivisors   = "LVLBITS_PROBE_DIVISORS"
	EnvLogLevel        = "LVLBITS_LOG_LEVEL"
)

// DefaultLogLevel applies when neither the file nor the environment sets one.
const DefaultLogLevel = logrus.WarnLevel

// File mirrors the TOML document. Nil fields were not set anywhere.
type File struct {
	Expansion Expansion `toml:"expansion"`
	Log       Log       `toml:"log"`
}

// Expansion holds the settings of the slow numerical path.
type Expansion struct {
	SlowThreshold *string `toml:"slow_threshold"`
	Budget        *string `toml:"budget"`
	SelfCheck     *bool   `toml:"self_check"`
	ProbeDivisors *uint64 `toml:"probe_divisors"`
}

// Log holds logging settings.
type Log struct {
	Level *string `toml:"level"`
}

// Load reads path (skipped when empty) and applies environment overrides.
func Load(path string) (*File, error) {
	f := &File{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if f, err = Parse(string(data)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := f.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return f, nil
}

// Parse decodes a TOML document. Keys outside the format are rejected.
func Parse(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	return &f, nil
}

// ApplyEnv overrides fields from lookup, typically os.LookupEnv. Empty
// values are ignored.
func (f *File) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvSlowThreshold); ok {
		f.Expansion.SlowThreshold = &v
	}
	if v, ok := get(EnvExpansionBudget); ok {
		f.Expansion.Budget = &v
	}
	if v, ok := get(EnvSelfCheck); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSelfCheck, v, ErrBadBool)
		}
		f.Expansion.SelfCheck = &b
	}
	if v, ok := get(EnvProbeDivisors); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n < 1 {
			return fmt.Errorf("%s=%q: %w", EnvProbeDivisors, v, ErrBadProbeDivisors)
		}
		f.Expansion.ProbeDivisors = &n
	}
	if v, ok := get(EnvLogLevel); ok {
		f.Log.Level = &v
	}

	return nil
}

// Options converts the expansion settings. Values are validated here so the
// operator constructors never see a value they would panic on.
func (f *File) Options() ([]operator.Option, error) {
	var opts []operator.Option

	if f.Expansion.SlowThreshold != nil {
		d, err := duration("slow_threshold", *f.Expansion.SlowThreshold)
		if err != nil {
			return nil, err
		}
		opts = append(opts, operator.WithSlowThreshold(d))
	}
	if f.Expansion.Budget != nil {
		d, err := duration("budget", *f.Expansion.Budget)
		if err != nil {
			return nil, err
		}
		opts = append(opts, operator.WithExpansionBudget(d))
	}
	if f.Expansion.SelfCheck != nil {
		opts = append(opts, operator.WithSelfCheck(*f.Expansion.SelfCheck))
	}
	if f.Expansion.ProbeDivisors != nil {
		if *f.Expansion.ProbeDivisors < 1 {
			return nil, ErrBadProbeDivisors
		}
		opts = append(opts, operator.WithProbeDivisors(*f.Expansion.ProbeDivisors))
	}

	return opts, nil
}

// LogLevel returns the configured level, or DefaultLogLevel.
func (f *File) LogLevel() (logrus.Level, error) {
	if f.Log.Level == nil {
		return DefaultLogLevel, nil
	}
	lvl, err := logrus.ParseLevel(*f.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLevel, *f.Log.Level)
	}

	return lvl, nil
}

// Logger builds a logrus logger writing to out at the configured level.
func (f *File) Logger(out io.Writer) (*logrus.Logger, error) {
	lvl, err := f.LogLevel()
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)

	return l, nil
}

func duration(key, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s=%q: %w", key, s, ErrBadDuration)
	}

	return d, nil
}
