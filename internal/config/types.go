package config

import (
	"path/filepath"

	"awsranges/internal/utils"
)

const DefaultRangesURL = "https://ip-ranges.amazonaws.com/ip-ranges.json"

type Config struct {
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// Server holds settings for the HTTP API server (serve command).
	Server *ServerConfig `toml:"server"`
	// Zone holds settings for the zone change-set generator (zoneset command).
	Zone *ZoneConfig `toml:"zone"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// RangesURL is the URL of the published ip-ranges document.
	RangesURL string `toml:"ranges_url" json:"ranges_url" validate:"omitempty,url"`
	// RangesOutputDir is the directory for downloaded documents.
	RangesOutputDir string `toml:"ranges_output_dir" json:"ranges_output_dir"`
	// Format is an optional output template with {{network}}, {{region}} and {{services}} variables.
	Format string `toml:"format" json:"format"`
}

type ServerConfig struct {
	// Listen is the API server listen address (host:port).
	Listen string `toml:"listen" json:"listen" validate:"hostport_or_empty"`
	// RefreshIntervalMinutes is the interval for background document refresh (0 = disabled).
	RefreshIntervalMinutes int `toml:"refresh_interval_minutes" json:"refresh_interval_minutes" validate:"gte=0"`
}

type ZoneConfig struct {
	// Server is the DNS server to request zone transfers from (host:port).
	Server string `toml:"server" json:"server" validate:"hostport_or_empty"`
	// TTL is the TTL for records emitted in change-sets.
	TTL uint32 `toml:"ttl" json:"ttl" validate:"gte=0"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		General: &GeneralConfig{
			RangesURL:       DefaultRangesURL,
			RangesOutputDir: "/var/cache/awsranges",
		},
		Server: &ServerConfig{
			Listen:                 "127.0.0.1:8787",
			RefreshIntervalMinutes: 1440,
		},
		Zone: &ZoneConfig{
			TTL: 300,
		},
	}
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsRangesOutputDir resolves the output directory against the config
// file location when it is relative.
func (c *Config) GetAbsRangesOutputDir() string {
	return utils.GetAbsolutePath(c.General.RangesOutputDir, c.GetConfigDir())
}
