package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Related: RelatedConfig{DefaultThreshold: 0.2},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{},
		},
		Related: RelatedConfig{DefaultThreshold: 0.2},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_InvalidThreshold(t *testing.T) {
	thresholds := []float64{-0.1, 0, 1.5}

	for _, th := range thresholds {
		cfg := Config{
			HTTP: HTTPConfig{Port: 8080},
			Database: DatabaseConfig{
				Addrs: []string{"localhost:6379"},
			},
			Related: RelatedConfig{DefaultThreshold: th},
		}

		err := cfg.Validate()
		if err == nil {
			t.Errorf("expected error for threshold %v", th)
		}
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Related: RelatedConfig{DefaultThreshold: 1.0},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Storage.KeyPrefix != "graceroom:" {
		t.Errorf("expected KeyPrefix='graceroom:', got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Related.DefaultThreshold != 0.2 {
		t.Errorf("expected DefaultThreshold=0.2, got %v", cfg.Related.DefaultThreshold)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{ReadinessTimeout: 15},
		Storage:  StorageConfig{KeyPrefix: "custom:"},
		Related:  RelatedConfig{DefaultThreshold: 0.5},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Related.DefaultThreshold != 0.5 {
		t.Errorf("expected DefaultThreshold=0.5, got %v", cfg.Related.DefaultThreshold)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("GRACEROOM_TEST_PASSWORD", "secret")

	in := []byte("password: ${GRACEROOM_TEST_PASSWORD}\nprefix: ${GRACEROOM_TEST_PREFIX:-graceroom:}\n")
	out := string(expandEnvVars(in))

	want := "password: secret\nprefix: graceroom:\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}
