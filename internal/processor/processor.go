// Package processor applies the heading policy to each document of a run,
// one file at a time, and aggregates the outcome statistics.
package processor

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/logging"
	"github.com/starford/ansuz/internal/rules"
	"github.com/starford/ansuz/internal/storage"
)

// Options carries the per-run processing policy.
type Options struct {
	DryRun       bool
	Backup       bool
	SkipExisting bool
	TitleCase    bool
	PreserveCase bool
	// VaultName is the base name of the vault root, used as the subject
	// for index/readme files that sit directly in the root.
	VaultName string
}

// Processor visits documents sequentially. A failure on one file is logged
// and counted; the run always continues to the next file.
type Processor struct {
	store  storage.Provider
	tables *rules.Tables
	log    *logging.Logger
	opts   Options
	stats  Stats
}

// New creates a Processor over the given storage and rule tables.
func New(store storage.Provider, tables *rules.Tables, log *logging.Logger, opts Options) *Processor {
	return &Processor{store: store, tables: tables, log: log, opts: opts}
}

// Process visits relPaths in order and returns the aggregated statistics.
// Cancelling ctx stops the run between files; statistics for the files
// already visited are still returned.
func (p *Processor) Process(ctx context.Context, relPaths []string) Stats {
	total := len(relPaths)
	for i, rel := range relPaths {
		if err := ctx.Err(); err != nil {
			p.log.Warn("Run cancelled after %d of %d files: %v", i, total, err)
			break
		}
		p.log.Debug("Processing (%d/%d): %s", i+1, total, rel)
		p.processFile(rel)
	}
	return p.stats
}

func (p *Processor) processFile(rel string) {
	name := path.Base(rel)

	data, err := p.store.Read(rel)
	if err != nil {
		p.fail(name, err)
		return
	}

	meta, body, err := frontmatter.Parse(data)
	if err != nil {
		if !errors.Is(err, frontmatter.ErrMalformed) {
			p.fail(name, err)
			return
		}
		// Keep the whole original text as body and stamp a fresh block.
		p.log.Warn("Invalid YAML frontmatter in %s: %v", rel, err)
	}

	if meta != nil && meta.Has("heading") && p.opts.SkipExisting {
		p.log.Info("⚠ Skipped (has heading): %s", name)
		p.stats.SkippedExisting++
		return
	}

	heading := p.tables.Heading(p.request(rel), rules.Options{
		TitleCase:    p.opts.TitleCase,
		PreserveCase: p.opts.PreserveCase,
	})

	if meta == nil {
		meta = frontmatter.NewMapping()
	}
	meta.Set("heading", heading)

	content, err := frontmatter.Serialize(meta, body)
	if err != nil {
		p.fail(name, err)
		return
	}

	if !p.opts.DryRun {
		if p.opts.Backup {
			if err := p.store.Backup(rel); err != nil {
				p.fail(name, err)
				return
			}
		}
		if err := p.store.Write(rel, []byte(content)); err != nil {
			p.fail(name, err)
			return
		}
	}

	p.log.Success("✓ Added heading to: %s → %q", name, heading)
	p.stats.Processed++
}

func (p *Processor) fail(name string, err error) {
	p.log.Error("✗ Error processing %s: %v", name, err)
	p.stats.Errors++
}

// request derives the rule-engine view of one document from its path.
func (p *Processor) request(rel string) rules.Request {
	name := path.Base(rel)
	stem := strings.TrimSuffix(name, path.Ext(name))
	parent := path.Base(path.Dir(rel))
	if parent == "." {
		parent = p.opts.VaultName
	}
	return rules.Request{Stem: stem, RelPath: rel, Parent: parent}
}
