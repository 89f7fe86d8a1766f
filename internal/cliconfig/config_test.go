package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/cardstats/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Draws != 3 {
		t.Errorf("Draws = %v, want 3", cfg.Draws)
	}
	if cfg.SampleSize != 30 {
		t.Errorf("SampleSize = %v, want 30", cfg.SampleSize)
	}
	if cfg.Samples != 50 {
		t.Errorf("Samples = %v, want 50", cfg.Samples)
	}
	if cfg.Threshold != 20 {
		t.Errorf("Threshold = %v, want 20", cfg.Threshold)
	}
	if cfg.Confidence != 0.90 {
		t.Errorf("Confidence = %v, want 0.90", cfg.Confidence)
	}
	if cfg.Figures {
		t.Error("Figures should be off by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "zero draws", mutate: func(c *Config) { c.Draws = 0 }, wantErr: domain.ErrInvalidConfig},
		{name: "more draws than cards", mutate: func(c *Config) { c.Draws = 53 }, wantErr: domain.ErrInvalidConfig},
		{name: "large hand needs population skipped", mutate: func(c *Config) { c.Draws = 10 }, wantErr: domain.ErrInvalidConfig},
		{
			name:   "large hand without population",
			mutate: func(c *Config) { c.Draws = 10; c.SkipPopulation = true },
		},
		{name: "sample size one", mutate: func(c *Config) { c.SampleSize = 1 }, wantErr: domain.ErrInvalidConfig},
		{name: "single sample", mutate: func(c *Config) { c.Samples = 1 }, wantErr: domain.ErrInvalidConfig},
		{name: "confidence one", mutate: func(c *Config) { c.Confidence = 1 }, wantErr: domain.ErrInvalidConfig},
		{name: "confidence zero", mutate: func(c *Config) { c.Confidence = 0 }, wantErr: domain.ErrInvalidConfig},
		{
			name:   "sampling fields ignored when sampling skipped",
			mutate: func(c *Config) { c.SkipSampling = true; c.Samples = 0; c.Confidence = 2 },
		},
		{
			name:    "everything skipped",
			mutate:  func(c *Config) { c.SkipSampling = true; c.SkipPopulation = true },
			wantErr: domain.ErrNothingToRun,
		},
		{name: "figures need dpi", mutate: func(c *Config) { c.Figures = true; c.DPI = 0 }, wantErr: domain.ErrInvalidConfig},
		{name: "watch needs debounce", mutate: func(c *Config) { c.Watch = true; c.DebounceDelay = 0 }, wantErr: domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_Derivations(t *testing.T) {
	prev := now
	now = func() time.Time { return time.Unix(0, 12345) }
	defer func() { now = prev }()

	c1 := DefaultConfig()
	if err := c1.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c1.Seed != 12345 {
		t.Errorf("Seed = %v, want 12345", c1.Seed)
	}

	// explicit seed is kept
	c2 := DefaultConfig()
	c2.Seed = 7
	if err := c2.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c2.Seed != 7 {
		t.Errorf("Seed = %v, want 7", c2.Seed)
	}

	// empty figures dir falls back to the working directory
	c3 := DefaultConfig()
	c3.Figures = true
	c3.FiguresDir = ""
	if err := c3.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c3.FiguresDir != "." {
		t.Errorf("FiguresDir = %q, want .", c3.FiguresDir)
	}
}
