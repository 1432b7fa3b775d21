package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"awsranges/internal/log"
)

// LoadConfig reads and parses the TOML configuration file. Missing sections
// are filled with defaults; the file itself must exist.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)

	return &config, nil
}

// applyDefaults fills absent sections and zero values with the built-in
// defaults, so commands never have to nil-check sections.
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.General == nil {
		c.General = defaults.General
	} else {
		if c.General.RangesURL == "" {
			c.General.RangesURL = defaults.General.RangesURL
		}
		if c.General.RangesOutputDir == "" {
			c.General.RangesOutputDir = defaults.General.RangesOutputDir
		}
	}

	if c.Server == nil {
		c.Server = defaults.Server
	} else if c.Server.Listen == "" {
		c.Server.Listen = defaults.Server.Listen
	}

	if c.Zone == nil {
		c.Zone = defaults.Zone
	} else if c.Zone.TTL == 0 {
		c.Zone.TTL = defaults.Zone.TTL
	}
}
