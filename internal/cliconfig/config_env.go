package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (CARDSTATS_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setUint64FromString("seed", os.Getenv("CARDSTATS_SEED"), &cfg.Seed); err != nil {
		return err
	}
	if err := s.setIntFromString("draws", os.Getenv("CARDSTATS_DRAWS"), &cfg.Draws); err != nil {
		return err
	}
	if err := s.setIntFromString("sample-size", os.Getenv("CARDSTATS_SAMPLE_SIZE"), &cfg.SampleSize); err != nil {
		return err
	}
	if err := s.setIntFromString("samples", os.Getenv("CARDSTATS_SAMPLES"), &cfg.Samples); err != nil {
		return err
	}
	if err := s.setIntFromString("dpi", os.Getenv("CARDSTATS_DPI"), &cfg.DPI); err != nil {
		return err
	}

	if err := s.setFloatFromString("threshold", os.Getenv("CARDSTATS_THRESHOLD"), &cfg.Threshold); err != nil {
		return err
	}
	if err := s.setFloatFromString("confidence", os.Getenv("CARDSTATS_CONFIDENCE"), &cfg.Confidence); err != nil {
		return err
	}

	s.setString("figures-dir", os.Getenv("CARDSTATS_FIGURES_DIR"), &cfg.FiguresDir)
	s.setString("report", os.Getenv("CARDSTATS_REPORT"), &cfg.Report)
	s.setString("log-level", os.Getenv("CARDSTATS_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv("CARDSTATS_DEBOUNCE"), &cfg.DebounceDelay); err != nil {
		return err
	}

	s.setBoolFromString("figures", os.Getenv("CARDSTATS_FIGURES"), &cfg.Figures)
	s.setBoolFromString("skip-population", os.Getenv("CARDSTATS_SKIP_POPULATION"), &cfg.SkipPopulation)
	s.setBoolFromString("skip-sampling", os.Getenv("CARDSTATS_SKIP_SAMPLING"), &cfg.SkipSampling)
	s.setBoolFromString("watch", os.Getenv("CARDSTATS_WATCH"), &cfg.Watch)

	return nil
}
