package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Seed           uint64   `toml:"seed"`
	Draws          int      `toml:"draws"`
	SampleSize     int      `toml:"sample_size"`
	Samples        int      `toml:"samples"`
	Threshold      *float64 `toml:"threshold"`
	Confidence     float64  `toml:"confidence"`
	Figures        *bool    `toml:"figures"`
	FiguresDir     string   `toml:"figures_dir"`
	DPI            int      `toml:"dpi"`
	Report         string   `toml:"report"`
	LogLevel       string   `toml:"log_level"`
	SkipPopulation *bool    `toml:"skip_population"`
	SkipSampling   *bool    `toml:"skip_sampling"`
	Watch          *bool    `toml:"watch"`
	DebounceDelay  string   `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.cardstats/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".cardstats", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setUint64("seed", fc.Seed, &cfg.Seed)
	s.setInt("draws", fc.Draws, &cfg.Draws)
	s.setInt("sample-size", fc.SampleSize, &cfg.SampleSize)
	s.setInt("samples", fc.Samples, &cfg.Samples)
	s.setInt("dpi", fc.DPI, &cfg.DPI)

	s.setFloatPtr("threshold", fc.Threshold, &cfg.Threshold)
	s.setFloat("confidence", fc.Confidence, &cfg.Confidence)

	s.setString("figures-dir", fc.FiguresDir, &cfg.FiguresDir)
	s.setString("report", fc.Report, &cfg.Report)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("debounce", fc.DebounceDelay, &cfg.DebounceDelay); err != nil {
		return err
	}

	s.setBool("figures", fc.Figures, &cfg.Figures)
	s.setBool("skip-population", fc.SkipPopulation, &cfg.SkipPopulation)
	s.setBool("skip-sampling", fc.SkipSampling, &cfg.SkipSampling)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
