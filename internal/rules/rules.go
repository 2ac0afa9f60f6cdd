// Package rules derives the heading for a document from its location and
// name, using an ordered rule list over per-run pattern tables.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/starford/ansuz/internal/titlecase"
)

const summarySuffix = "-summary"

// Built-in location patterns. They are matched case-insensitively against
// the slash-separated path relative to the vault root.
var (
	defaultDailyPatterns = []string{
		`00-INBOX[/\\]daily-notes[/\\]`,
		`99-ARCHIVE[/\\]\d{4}[/\\]\d{2}-\w+[/\\]`,
		`daily-notes[/\\]`,
		`journal[/\\]`,
	}
	defaultTemplatePatterns = []string{
		`04-TEMPLATES[/\\]`,
		`templates[/\\]`,
		`template[/\\]`,
	}

	builtinDaily    = compileAll(defaultDailyPatterns)
	builtinTemplate = compileAll(defaultTemplatePatterns)
)

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile("(?i)"+p))
	}
	return out
}

// Tables holds the compiled pattern tables and preserve set for one run.
// They are seeded from built-in defaults, extended during startup, and
// read-only afterwards.
type Tables struct {
	daily    []*regexp.Regexp
	template []*regexp.Regexp
	include  []*regexp.Regexp
	preserve *titlecase.PreserveSet
}

// DefaultTables returns tables seeded with the built-in patterns and the
// default preserve set.
func DefaultTables() *Tables {
	t := &Tables{preserve: titlecase.DefaultPreserveSet()}
	t.daily = append(t.daily, builtinDaily...)
	t.template = append(t.template, builtinTemplate...)
	return t
}

// AddDailyNotePattern appends a daily-note location regexp. The pattern is
// matched case-insensitively.
func (t *Tables) AddDailyNotePattern(pattern string) error {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return fmt.Errorf("rules: invalid daily-note pattern %q: %w", pattern, err)
	}
	t.daily = append(t.daily, re)
	return nil
}

// AddTemplatePattern appends a template location regexp. The pattern is
// matched case-insensitively.
func (t *Tables) AddTemplatePattern(pattern string) error {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return fmt.Errorf("rules: invalid template pattern %q: %w", pattern, err)
	}
	t.template = append(t.template, re)
	return nil
}

// AddIncludeGlob appends a glob pattern that classifies matching paths as
// daily notes. A single * crosses path separators and **/ also matches zero
// directories.
func (t *Tables) AddIncludeGlob(pattern string) error {
	re, err := translateGlob(pattern)
	if err != nil {
		return fmt.Errorf("rules: invalid include pattern %q: %w", pattern, err)
	}
	t.include = append(t.include, re)
	return nil
}

// AddPreserveTerms extends the title-case preserve set.
func (t *Tables) AddPreserveTerms(terms ...string) {
	t.preserve.Add(terms...)
}

// Request identifies one document for heading computation.
type Request struct {
	// Stem is the file name without its extension.
	Stem string
	// RelPath is the slash-separated path relative to the vault root.
	RelPath string
	// Parent is the base name of the containing directory.
	Parent string
}

// Options carries the casing flags for one run. TitleCase wins only when
// PreserveCase is false.
type Options struct {
	TitleCase    bool
	PreserveCase bool
}

// Heading evaluates the rules in strict order and returns the heading of
// the first match.
func (t *Tables) Heading(req Request, opts Options) string {
	if t.isDailyNote(req.RelPath) {
		return "Daily Note " + req.Stem
	}

	if strings.HasSuffix(req.Stem, summarySuffix) {
		name := strings.TrimSuffix(req.Stem, summarySuffix)
		if opts.TitleCase {
			name = titlecase.Transform(name, t.preserve)
		}
		return name + " - Summary"
	}

	if t.isTemplate(req.RelPath, req.Stem) {
		return "Template: " + req.Stem
	}

	if strings.EqualFold(req.Stem, "index") {
		return t.subject(req.Parent, opts) + " - Index"
	}

	if strings.EqualFold(req.Stem, "readme") {
		return t.subject(req.Parent, opts) + " - README"
	}

	if opts.TitleCase && !opts.PreserveCase {
		return titlecase.Transform(req.Stem, t.preserve)
	}
	return req.Stem
}

// isDailyNote reports whether the path lies in a daily-note location or
// matches a user-supplied include glob.
func (t *Tables) isDailyNote(relPath string) bool {
	for _, re := range t.daily {
		if re.MatchString(relPath) {
			return true
		}
	}
	for _, re := range t.include {
		if re.MatchString(relPath) {
			return true
		}
	}
	return false
}

// isTemplate reports whether the path lies in a template location or the
// stem itself names a template.
func (t *Tables) isTemplate(relPath, stem string) bool {
	for _, re := range t.template {
		if re.MatchString(relPath) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(stem), "template")
}

func (t *Tables) subject(parent string, opts Options) string {
	if opts.TitleCase {
		return titlecase.Transform(parent, t.preserve)
	}
	return parent
}

// translateGlob converts a glob pattern into an anchored regexp. ? matches
// one character and character classes follow [seq] / [!seq] syntax; an
// unterminated class matches a literal bracket.
func translateGlob(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch c {
		case '*':
			if strings.HasPrefix(pattern[i:], "**/") {
				b.WriteString("(?:.*/)?")
				i += 3
				continue
			}
			for i < len(pattern) && pattern[i] == '*' {
				i++
			}
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
			i++
		case '[':
			j := i + 1
			if j < len(pattern) && (pattern[j] == '!' || pattern[j] == '^') {
				j++
			}
			if j < len(pattern) && pattern[j] == ']' {
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j >= len(pattern) {
				b.WriteString(`\[`)
				i++
				continue
			}
			inner := pattern[i+1 : j]
			if strings.HasPrefix(inner, "!") {
				inner = "^" + inner[1:]
			}
			b.WriteString("[" + inner + "]")
			i = j + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
			i++
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}
