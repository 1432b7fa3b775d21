package config

import (
	"strings"
	"testing"
)

func TestValidateConfig_Defaults(t *testing.T) {
	cfg := Default()
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected default config to validate, got: %v", err)
	}
}

func TestValidateConfig_MissingGeneral(t *testing.T) {
	cfg := &Config{}
	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for missing general section")
	}
	if !strings.Contains(err.Error(), "general") {
		t.Errorf("Expected error to mention general section, got: %v", err)
	}
}

func TestValidateConfig_InvalidURL(t *testing.T) {
	cfg := Default()
	cfg.General.RangesURL = "not a url"

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for invalid URL")
	}
	if !strings.Contains(err.Error(), "general.ranges_url") {
		t.Errorf("Expected field path general.ranges_url in error, got: %v", err)
	}
}

func TestValidateConfig_InvalidListen(t *testing.T) {
	cfg := Default()
	cfg.Server.Listen = "no-port-here"

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected error for invalid listen address")
	}
	if !strings.Contains(err.Error(), "server.listen") {
		t.Errorf("Expected field path server.listen in error, got: %v", err)
	}
}

func TestValidateConfig_NegativeRefreshInterval(t *testing.T) {
	cfg := Default()
	cfg.Server.RefreshIntervalMinutes = -1

	if err := cfg.ValidateConfig(); err == nil {
		t.Fatal("Expected error for negative refresh interval")
	}
}
