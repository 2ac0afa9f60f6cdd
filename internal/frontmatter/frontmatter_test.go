package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_MetadataAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\ntags:\n  - go\n  - vault\n---\n# Hello\nBody text.\n")
	m, body, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected metadata, got nil")
	}
	if got, _ := m.Get("title"); got != "Hello" {
		t.Errorf("title = %q, want %q", got, "Hello")
	}
	if body != "# Hello\nBody text.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParse_NoOpeningDelimiter(t *testing.T) {
	input := []byte("# Just a heading\nSome text.\n")
	m, body, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil metadata, got keys %v", m.Keys())
	}
	if body != string(input) {
		t.Errorf("body = %q, want original text", body)
	}
}

func TestParse_LeadingBlankLineNotRecognized(t *testing.T) {
	input := []byte("\n---\ntitle: Hello\n---\nBody\n")
	m, body, _ := Parse(input)
	if m != nil {
		t.Error("delimiter below the first line must not open a block")
	}
	if body != string(input) {
		t.Errorf("body = %q, want original text", body)
	}
}

func TestParse_MissingClosingDelimiter(t *testing.T) {
	input := []byte("---\ntitle: Unclosed\nBody keeps going\n")
	m, body, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Error("unclosed block should parse as no metadata")
	}
	if body != string(input) {
		t.Errorf("body = %q, want original text", body)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	input := []byte("---\ntitle: [unclosed\n---\nBody\n")
	m, body, err := Parse(input)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if m != nil {
		t.Error("malformed block should yield nil metadata")
	}
	if body != string(input) {
		t.Errorf("body = %q, want original text preserved verbatim", body)
	}
}

func TestParse_NonMappingBlock(t *testing.T) {
	input := []byte("---\n- a\n- b\n---\nBody\n")
	_, body, err := Parse(input)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	if body != string(input) {
		t.Errorf("body = %q, want original text", body)
	}
}

func TestParse_EmptyBlock(t *testing.T) {
	m, body, err := Parse([]byte("---\n---\nBody\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("empty block should be an empty mapping, not absent")
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
	if body != "Body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParse_WhitespaceOnlyBlock(t *testing.T) {
	m, _, err := Parse([]byte("---\n   \n\n---\nBody\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.Len() != 0 {
		t.Error("whitespace-only block should be an empty mapping")
	}
}

func TestParse_CRLFDelimiters(t *testing.T) {
	input := []byte("---\r\ntitle: Windows\r\n---\r\nBody\r\n")
	m, body, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := m.Get("title"); got != "Windows" {
		t.Errorf("title = %q, want %q", got, "Windows")
	}
	if body != "Body\r\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParse_ClosingDelimiterPadded(t *testing.T) {
	m, body, err := Parse([]byte("---\ntitle: Padded\n  ---  \nBody\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := m.Get("title"); got != "Padded" {
		t.Errorf("title = %q", got)
	}
	if body != "Body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParse_BodyKeptVerbatim(t *testing.T) {
	_, body, err := Parse([]byte("---\na: 1\n---\n\n\nBody after blanks\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "\n\nBody after blanks\n" {
		t.Errorf("body = %q, leading blank lines must survive", body)
	}
}

func TestSet_AppendsNewKeyLast(t *testing.T) {
	m, _, err := Parse([]byte("---\ntitle: Note\ntags:\n  - a\ncreated: 2024-01-01\n---\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Set("heading", "My Note")
	keys := m.Keys()
	want := []string{"title", "tags", "created", "heading"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestSet_UpdatesInPlace(t *testing.T) {
	m := NewMapping()
	m.Set("heading", "Old")
	m.Set("author", "Someone")
	m.Set("heading", "New")
	if got, _ := m.Get("heading"); got != "New" {
		t.Errorf("heading = %q, want %q", got, "New")
	}
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "heading" || keys[1] != "author" {
		t.Errorf("keys = %v, want [heading author]", keys)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	input := []byte("---\ntitle: Round Trip\ncount: 3\ntags:\n  - x\n  - y\n---\nThe body.\n")
	m, body, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m.Set("heading", "Round Trip")

	out, err := Serialize(m, body)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	m2, body2, err := Parse([]byte(out))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if body2 != "The body.\n" {
		t.Errorf("body after round trip = %q", body2)
	}
	keys := m2.Keys()
	want := []string{"title", "count", "tags", "heading"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if got, _ := m2.Get("title"); got != "Round Trip" {
		t.Errorf("title = %q", got)
	}
	if got, _ := m2.Get("count"); got != "3" {
		t.Errorf("count = %q", got)
	}
}

func TestSerialize_EmptyMapping(t *testing.T) {
	out, err := Serialize(NewMapping(), "Body\n")
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if out != "---\n{}\n---\nBody\n" {
		t.Errorf("out = %q", out)
	}
}

func TestSerialize_HeadingOnly(t *testing.T) {
	m := NewMapping()
	m.Set("heading", "Daily Note 2024-01-15")
	out, err := Serialize(m, "content\n")
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if out != "---\nheading: Daily Note 2024-01-15\n---\ncontent\n" {
		t.Errorf("out = %q", out)
	}
}

func TestSerialize_Unicode(t *testing.T) {
	m := NewMapping()
	m.Set("heading", "Заметка — écrit 日本語")
	out, err := Serialize(m, "κείμενο\n")
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	m2, body, err := Parse([]byte(out))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if got, _ := m2.Get("heading"); got != "Заметка — écrit 日本語" {
		t.Errorf("heading = %q", got)
	}
	if body != "κείμενο\n" {
		t.Errorf("body = %q", body)
	}
}

func TestSerialize_PreservesComments(t *testing.T) {
	input := []byte("---\ntitle: Hello # keep me\n---\nBody\n")
	m, body, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m.Set("heading", "Hello")
	out, err := Serialize(m, body)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !strings.Contains(out, "# keep me") {
		t.Errorf("comment lost: %q", out)
	}
}

func TestHasAndGet(t *testing.T) {
	m, _, err := Parse([]byte("---\nheading: Existing\nnested:\n  a: 1\n---\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !m.Has("heading") {
		t.Error("Has(heading) = false, want true")
	}
	if m.Has("missing") {
		t.Error("Has(missing) = true, want false")
	}
	if _, ok := m.Get("nested"); ok {
		t.Error("Get on a non-scalar value should report false")
	}
}
