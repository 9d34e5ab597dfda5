package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the global ~/.kmaint/config.toml.
type Config struct {
	KlipperDir   string `toml:"klipper_dir"`
	MoonrakerDir string `toml:"moonraker_dir"`
	Color        string `toml:"color"`
	BuildJobs    int    `toml:"build_jobs"`
}

// Default returns a config populated with the stock directory layout.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		KlipperDir:   filepath.Join(home, "klipper"),
		MoonrakerDir: filepath.Join(home, "moonraker"),
		Color:        "auto",
		BuildJobs:    runtime.NumCPU(),
	}
}

// Load reads config from the given path. Keys missing from the file
// keep their default values. Returns an error if the file is missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
