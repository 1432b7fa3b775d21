package commands

import (
	"fmt"
	"os"

	"awsranges/internal/config"
	"awsranges/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
}

// loadConfigOrDefault loads and validates the configuration file, falling
// back to built-in defaults when the file does not exist. The filter and
// zoneset commands work without any configuration; only an existing but
// broken file is an error.
func loadConfigOrDefault(configPath string) (*config.Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Debugf("Configuration file %s not found, using defaults", configPath)
		return config.Default(), nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}
