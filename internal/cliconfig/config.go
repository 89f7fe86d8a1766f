package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/cardstats/internal/domain"
	"github.com/bft-labs/cardstats/pkg/deck"
	"github.com/bft-labs/cardstats/pkg/population"
)

// Config holds CLI configuration for cardstats.
type Config struct {
	// Seed for the random source. Zero picks a seed from the clock during
	// Validate; the chosen seed is reported so a run can be repeated.
	Seed uint64

	Draws      int
	SampleSize int
	Samples    int

	Threshold  float64
	Confidence float64

	Figures    bool
	FiguresDir string
	DPI        int

	Report   string
	LogLevel string

	SkipPopulation bool
	SkipSampling   bool

	Watch         bool
	DebounceDelay time.Duration
}

// now is replaced in tests.
var now = time.Now

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Draws:         3,
		SampleSize:    30,
		Samples:       50,
		Threshold:     20,
		Confidence:    0.90,
		FiguresDir:    ".",
		DPI:           300,
		LogLevel:      "info",
		DebounceDelay: 200 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.SkipPopulation && c.SkipSampling {
		return fmt.Errorf("%w: population and sampling both skipped", domain.ErrNothingToRun)
	}
	if c.Draws < 1 || c.Draws > deck.Size {
		return fmt.Errorf("%w: draws must be between 1 and %d", domain.ErrInvalidConfig, deck.Size)
	}
	if !c.SkipPopulation && c.Draws > population.MaxCards {
		return fmt.Errorf("%w: population enumeration supports at most %d cards (use --skip-population)",
			domain.ErrInvalidConfig, population.MaxCards)
	}
	if !c.SkipSampling {
		if c.SampleSize < 2 {
			return fmt.Errorf("%w: sample-size must be at least 2", domain.ErrInvalidConfig)
		}
		if c.Samples < 2 {
			return fmt.Errorf("%w: samples must be at least 2", domain.ErrInvalidConfig)
		}
		if !(c.Confidence > 0 && c.Confidence < 1) {
			return fmt.Errorf("%w: confidence must be in (0,1)", domain.ErrInvalidConfig)
		}
	}
	if c.Figures {
		if c.FiguresDir == "" {
			c.FiguresDir = "."
		}
		if c.DPI <= 0 {
			return fmt.Errorf("%w: dpi must be positive", domain.ErrInvalidConfig)
		}
	}
	if c.Watch && c.DebounceDelay <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}

	if c.Seed == 0 {
		c.Seed = uint64(now().UnixNano())
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setUint64 sets a uint64 value if non-zero and flag not changed.
func (s *configSetter) setUint64(flag string, value uint64, dst *uint64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloatPtr sets a float64 value from a pointer if not nil and flag not changed.
func (s *configSetter) setFloatPtr(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setUint64FromString parses a string to uint64 and sets the destination if valid.
func (s *configSetter) setUint64FromString(flag, value string, dst *uint64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	u, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setUint64(flag, u, dst)
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination.
// Zero and negative values are applied; Validate checks their range.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
