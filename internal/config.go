package internal

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	Vault   VaultConfig
	Run     RunConfig
	Heading HeadingConfig
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return c.Vault.Validate()
}

// VaultConfig holds the location of the vault and the directory exclusions
// applied while scanning it. Exclusions match as substrings of a file's
// vault-relative directory path.
type VaultConfig struct {
	Path        string
	ExcludeDirs []string
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// RunConfig holds the switches that control a single processing run.
type RunConfig struct {
	DryRun       bool
	Backup       bool
	Verbose      bool
	SkipExisting bool
}

// HeadingConfig controls how headings are derived from file names.
// IncludePatterns are extra glob patterns whose matches are treated as
// daily notes.
type HeadingConfig struct {
	TitleCase       bool
	PreserveCase    bool
	IncludePatterns []string
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		Run: RunConfig{
			SkipExisting: true,
		},
	}
}
