// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/logging"
	"github.com/starford/ansuz/internal/processor"
	"github.com/starford/ansuz/internal/rules"
	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/vaultlock"
	"github.com/starford/ansuz/internal/walker"
)

// Run executes one pass over the vault with the given options: scan for
// markdown files, derive a heading for each and write it into the
// document's frontmatter.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	vaultPath, err := filepath.Abs(cfg.Vault.Path)
	if err != nil {
		return fmt.Errorf("resolve vault path: %w", err)
	}
	info, err := os.Stat(vaultPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", apperr.ErrVaultNotFound, vaultPath)
	}
	if err != nil {
		return fmt.Errorf("stat vault: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", apperr.ErrNotDirectory, vaultPath)
	}

	log := app.log
	if log == nil {
		log = logging.New(os.Stdout, cfg.Run.Verbose)
	}

	log.Info("Processing vault: %s", vaultPath)
	if cfg.Run.DryRun {
		log.Info("🔍 DRY RUN MODE - No files will be modified")
	}

	tables := rules.DefaultTables()
	for _, pattern := range cfg.Heading.IncludePatterns {
		if err := tables.AddIncludeGlob(pattern); err != nil {
			log.Warn("Ignoring include pattern: %v", err)
		}
	}
	LoadSidecar(vaultPath, log).Apply(cfg, tables, log)

	store, err := storage.NewFS(vaultPath)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// A dry run never writes, so concurrent runs are harmless then.
	if !cfg.Run.DryRun {
		lock := vaultlock.New(vaultPath)
		if err := lock.Acquire(); err != nil {
			return err
		}
		defer lock.Release()
	}

	scan, err := walker.Find(vaultPath, walker.Options{ExcludeDirs: cfg.Vault.ExcludeDirs})
	if err != nil {
		return fmt.Errorf("scan vault: %w", err)
	}
	for _, werr := range scan.Errors {
		log.Warn("Scan issue: %v", werr)
	}
	if len(scan.Files) == 0 {
		log.Warn("No markdown files found in vault")
		return nil
	}
	log.Info("Found %d markdown files", len(scan.Files))

	proc := processor.New(store, tables, log, processor.Options{
		DryRun:       cfg.Run.DryRun,
		Backup:       cfg.Run.Backup,
		SkipExisting: cfg.Run.SkipExisting,
		TitleCase:    cfg.Heading.TitleCase,
		PreserveCase: cfg.Heading.PreserveCase,
		VaultName:    filepath.Base(vaultPath),
	})
	stats := proc.Process(ctx, scan.Files)
	stats.SkippedSpecial = scan.SkippedSpecial

	processor.LogSummary(log, stats)
	return nil
}
