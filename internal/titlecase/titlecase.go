// Package titlecase converts hyphen/underscore-separated file names into
// human-readable title case, keeping configured technical terms in their
// canonical casing.
package titlecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultTerms are the preserved terms every run starts with. Mixed-case
// entries keep their stored casing; the rest render uppercase.
var defaultTerms = []string{
	"API", "APIs", "UI", "UX", "CSS", "HTML", "JS", "JSON", "YAML", "XML",
	"SQL", "HTTP", "HTTPS", "URL", "URI", "ID", "iOS", "macOS", "IDE",
	"CLI", "GUI", "REST", "GraphQL", "OAuth", "JWT", "PDF", "PNG", "JPG",
	"GIF", "SVG", "MP3", "MP4", "ZIP", "README",
}

// orgPrefixRe matches a two-digit organizational prefix once its trailing
// hyphen has been replaced by a space.
var orgPrefixRe = regexp.MustCompile(`^\d{2}\s+`)

// PreserveSet maps any casing variant of a preserved term to its canonical
// stored form.
type PreserveSet struct {
	canonical map[string]string
}

// NewPreserveSet returns a set holding the given terms.
func NewPreserveSet(terms ...string) *PreserveSet {
	s := &PreserveSet{canonical: make(map[string]string, len(terms))}
	s.Add(terms...)
	return s
}

// DefaultPreserveSet returns a set seeded with the built-in terms.
func DefaultPreserveSet() *PreserveSet {
	return NewPreserveSet(defaultTerms...)
}

// Add extends the set. Existing defaults are never removed; adding a term
// that collides case-insensitively replaces its canonical form.
func (s *PreserveSet) Add(terms ...string) {
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		s.canonical[strings.ToUpper(t)] = t
	}
}

// Canonical looks the word up case-insensitively and returns the stored form.
func (s *PreserveSet) Canonical(word string) (string, bool) {
	form, ok := s.canonical[strings.ToUpper(word)]
	return form, ok
}

// Len returns the number of preserved terms.
func (s *PreserveSet) Len() int {
	return len(s.canonical)
}

// Transform renders a file stem as a title. Hyphens and underscores become
// spaces, a leading two-digit organizational prefix is dropped, and each
// word is either emitted in its preserved canonical form or capitalized.
func Transform(text string, set *PreserveSet) string {
	s := strings.ReplaceAll(text, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = orgPrefixRe.ReplaceAllString(s, "")

	words := strings.Fields(s)
	for i, w := range words {
		if form, ok := set.Canonical(w); ok {
			words[i] = form
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// capitalize title-cases the first rune and lowercases the rest. Words are
// never re-split on internal punctuation.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return word
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(word[size:])
}
