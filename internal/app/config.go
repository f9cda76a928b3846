package app

import "errors"

// Config holds everything an App instance needs to run one command.
type Config struct {
	// Root is the absolute project root directory (the one holding
	// project.hcl).
	Root string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		return nil, errors.New("Root is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
