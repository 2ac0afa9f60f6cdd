package internal

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/starford/ansuz/internal/logging"
	"github.com/starford/ansuz/internal/rules"
	"github.com/starford/ansuz/pkg/config"
)

// SidecarName is the optional per-vault configuration file, looked up in the
// vault root.
const SidecarName = ".heading-config.yaml"

// Sidecar is the schema of the per-vault configuration file. Every field is
// optional and extends the built-in defaults rather than replacing them.
type Sidecar struct {
	DailyNotePatterns   []string `yaml:"daily_note_patterns"`
	TemplateDirectories []string `yaml:"template_directories"`
	TitleCase           struct {
		PreserveTerms []string `yaml:"preserve_terms"`
	} `yaml:"title_case"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
}

// LoadSidecar reads the vault's sidecar file. A missing file is not an error.
// An unreadable or unparsable file is reported as a warning and treated as
// absent, so a broken sidecar never aborts a run.
func LoadSidecar(vaultPath string, log *logging.Logger) *Sidecar {
	path := filepath.Join(vaultPath, SidecarName)
	var sc Sidecar
	if err := config.Load(path, &sc); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("Error loading config file: %v", err)
		}
		return &Sidecar{}
	}
	log.Debug("Loaded configuration from %s", path)
	return &sc
}

// Apply merges the sidecar's settings into the rule tables and the vault
// exclusions. Patterns that fail to compile are reported and skipped.
func (s *Sidecar) Apply(cfg *Config, tables *rules.Tables, log *logging.Logger) {
	for _, p := range s.DailyNotePatterns {
		if err := tables.AddDailyNotePattern(p); err != nil {
			log.Warn("Ignoring sidecar pattern: %v", err)
		}
	}
	for _, p := range s.TemplateDirectories {
		if err := tables.AddTemplatePattern(p); err != nil {
			log.Warn("Ignoring sidecar pattern: %v", err)
		}
	}
	tables.AddPreserveTerms(s.TitleCase.PreserveTerms...)
	cfg.Vault.ExcludeDirs = append(cfg.Vault.ExcludeDirs, s.ExcludePatterns...)
}
