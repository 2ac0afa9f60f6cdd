package processor

import (
	"strings"

	"github.com/starford/ansuz/internal/logging"
)

// Stats counts per-file outcomes for one run.
type Stats struct {
	Processed       int
	SkippedExisting int
	SkippedSpecial  int
	Errors          int
}

// Total returns the number of files accounted for across all outcomes.
func (s Stats) Total() int {
	return s.Processed + s.SkippedExisting + s.SkippedSpecial + s.Errors
}

// LogSummary prints the end-of-run tally.
func LogSummary(log *logging.Logger, s Stats) {
	rule := strings.Repeat("=", 50)
	log.Info("\n%s", rule)
	log.Info("SUMMARY")
	log.Info("%s", rule)
	log.Success("✓ Processed: %d", s.Processed)
	log.Info("⚠ Skipped (existing): %d", s.SkippedExisting)
	log.Info("⚠ Skipped (special): %d", s.SkippedSpecial)
	log.Info("✗ Errors: %d", s.Errors)
	log.Info("\nTotal files: %d", s.Total())
}
