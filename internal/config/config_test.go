package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "employee_api_test")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.MongoDB.Database != "employee_api_test" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
	if cfg.Server.Port == "" {
		t.Fatalf("expected default server port, got %+v", cfg.Server)
	}
}
