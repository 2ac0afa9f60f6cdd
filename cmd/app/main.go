package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal"
)

func run(ctx context.Context, cmd *cli.Command) error {
	vaultPath := cmd.Args().First()
	if vaultPath == "" {
		return fmt.Errorf("vault path argument is required")
	}

	cfg := internal.NewDefaultConfig()
	cfg.Vault.Path = vaultPath
	cfg.Vault.ExcludeDirs = splitList(cmd.String("exclude-dirs"))
	cfg.Run.DryRun = cmd.Bool("dry-run")
	cfg.Run.Backup = cmd.Bool("backup")
	cfg.Run.Verbose = cmd.Bool("verbose")
	cfg.Run.SkipExisting = cmd.Bool("skip-existing")
	cfg.Heading.TitleCase = cmd.Bool("title-case")
	cfg.Heading.PreserveCase = cmd.Bool("preserve-case")
	cfg.Heading.IncludePatterns = splitList(cmd.String("include-patterns"))

	return internal.Run(ctx, internal.WithConfig(cfg))
}

// splitList parses a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:      "ansuz",
		Usage:     "Add heading frontmatter to every markdown note in an Obsidian vault",
		ArgsUsage: "<vault-path>",
		Action:    run,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "dry-run",
				Usage:   "Show what would change without modifying any file",
				Sources: cli.EnvVars("ANSUZ_DRY_RUN"),
			},
			&cli.BoolFlag{
				Name:    "backup",
				Usage:   "Write a .bak copy of each file before modifying it",
				Sources: cli.EnvVars("ANSUZ_BACKUP"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose logging",
				Sources: cli.EnvVars("ANSUZ_VERBOSE"),
			},
			&cli.BoolFlag{
				Name:    "skip-existing",
				Usage:   "Leave files that already carry a heading untouched",
				Value:   true,
				Sources: cli.EnvVars("ANSUZ_SKIP_EXISTING"),
			},
			&cli.BoolFlag{
				Name:    "title-case",
				Usage:   "Derive headings in Title Case instead of the verbatim file name",
				Sources: cli.EnvVars("ANSUZ_TITLE_CASE"),
			},
			&cli.BoolFlag{
				Name:    "preserve-case",
				Usage:   "Keep file name casing even when title-case is on",
				Sources: cli.EnvVars("ANSUZ_PRESERVE_CASE"),
			},
			&cli.StringFlag{
				Name:    "exclude-dirs",
				Usage:   "Comma-separated directory names to skip while scanning",
				Sources: cli.EnvVars("ANSUZ_EXCLUDE_DIRS"),
			},
			&cli.StringFlag{
				Name:    "include-patterns",
				Usage:   "Comma-separated glob patterns whose matches are treated as daily notes",
				Sources: cli.EnvVars("ANSUZ_INCLUDE_PATTERNS"),
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
