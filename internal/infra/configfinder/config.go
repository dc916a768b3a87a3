package configfinder

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/promptloop/internal/domain"
)

// LoadFile loads a promptloop.yaml file and applies defaults for anything it leaves out.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Promptloop.Below.Threshold != nil {
		cfg.Below.Threshold = *y.Promptloop.Below.Threshold
	}
	if y.Promptloop.Guess.Min != nil {
		cfg.Guess.Min = *y.Promptloop.Guess.Min
	}
	if y.Promptloop.Guess.Max != nil {
		cfg.Guess.Max = *y.Promptloop.Guess.Max
	}
	cfg.Guess.Seed = y.Promptloop.Guess.Seed

	if err := cfg.Validate(); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return cfg, nil
}

type yamlConfig struct {
	Promptloop struct {
		Below struct {
			Threshold *int `yaml:"threshold"`
		} `yaml:"below"`

		Guess struct {
			Min  *int    `yaml:"min"`
			Max  *int    `yaml:"max"`
			Seed *uint64 `yaml:"seed"`
		} `yaml:"guess"`
	} `yaml:"promptloop"`
}
