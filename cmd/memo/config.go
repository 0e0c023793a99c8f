package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/decred/slog"
)

type config struct {
	DataDir    string  `toml:"datadir"`
	TempDir    string  `toml:"tempdir"`
	LogFile    string  `toml:"logfile"`
	DebugLevel string  `toml:"debuglevel"`
	Resolution int     `toml:"resolution"`
	PeakHold   float64 `toml:"peakhold"`
	TickHz     int     `toml:"tickhz"`
}

var (
	defaultHomeDir = appDataDir()
	defaultCfgFile = filepath.Join(defaultHomeDir, "voicememo.conf")
)

func appDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".voicememo"
	}

	return filepath.Join(home, ".voicememo")
}

func defaultConfig() *config {
	return &config{
		DataDir:    filepath.Join(defaultHomeDir, "data"),
		TempDir:    os.TempDir(),
		DebugLevel: "info",
		Resolution: 200,
		PeakHold:   1,
		TickHz:     60,
	}
}

// expandPath resolves a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "" || path[0] != '~' {
		return filepath.Clean(path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(path)
	}

	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator)))
}

// readConfig loads the file at path over the defaults. A missing file is not
// an error.
func readConfig(path string) (*config, error) {
	cfg := defaultConfig()

	cfgBytes, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(cfgBytes, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.TempDir = expandPath(cfg.TempDir)
	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c *config) validate() error {
	if _, ok := slog.LevelFromString(c.DebugLevel); !ok {
		return fmt.Errorf("invalid debuglevel %q", c.DebugLevel)
	}
	if c.Resolution < 1 {
		return fmt.Errorf("resolution must be at least 1, got %d", c.Resolution)
	}
	if c.PeakHold <= 0 {
		return fmt.Errorf("peakhold must be positive, got %v", c.PeakHold)
	}
	if c.TickHz < 1 || c.TickHz > 1000 {
		return fmt.Errorf("tickhz must be within [1,1000], got %d", c.TickHz)
	}

	return nil
}

func (c *config) tickInterval() time.Duration {
	return time.Second / time.Duration(c.TickHz)
}

func (c *config) holdDuration() time.Duration {
	return time.Duration(c.PeakHold * float64(time.Second))
}
