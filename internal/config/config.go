package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/trknhr/hmmtag/internal/hmm"
)

type Config struct {
	DBPath        string  `yaml:"db_path"`
	LogLevel      string  `yaml:"log_level"`
	LogFile       string  `yaml:"log_file"`
	ModelName     string  `yaml:"model_name"`
	UnseenPenalty float64 `yaml:"unseen_penalty"`
	EvalWorkers   int     `yaml:"eval_workers"`
}

func Default() Config {
	return Config{
		LogLevel:      "info",
		ModelName:     "default",
		UnseenPenalty: hmm.DefaultUnseenPenalty,
		EvalWorkers:   4,
	}
}

// DefaultPath returns <user config dir>/hmmtag/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hmmtag", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if math.IsNaN(c.UnseenPenalty) || math.IsInf(c.UnseenPenalty, 0) || c.UnseenPenalty > 0 {
		return fmt.Errorf("unseen_penalty must be finite and not positive, got %v", c.UnseenPenalty)
	}
	if c.EvalWorkers < 1 {
		return fmt.Errorf("eval_workers must be at least 1, got %d", c.EvalWorkers)
	}
	if c.ModelName == "" {
		return errors.New("model_name must not be empty")
	}
	return nil
}
