package internal

import (
	"testing"
)

func TestVaultConfig_PathRequired(t *testing.T) {
	cfg := VaultConfig{Path: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty vault path should fail validation")
	}
}

func TestVaultConfig_Valid(t *testing.T) {
	cfg := VaultConfig{Path: "/tmp/vault", ExcludeDirs: []string{"private"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("vault config should pass: %v", err)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if !cfg.Run.SkipExisting {
		t.Error("SkipExisting should default to true")
	}
	if cfg.Run.DryRun || cfg.Run.Backup || cfg.Run.Verbose {
		t.Errorf("run switches should default to off, got %+v", cfg.Run)
	}
	if cfg.Heading.TitleCase || cfg.Heading.PreserveCase {
		t.Errorf("heading switches should default to off, got %+v", cfg.Heading)
	}
}

func TestFullConfig_VaultValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("default config without a vault path should fail validation")
	}
	cfg.Vault.Path = "/tmp/vault"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config with vault path should pass: %v", err)
	}
}
