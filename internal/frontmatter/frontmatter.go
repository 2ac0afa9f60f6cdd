// Package frontmatter splits Markdown documents into their YAML metadata
// block and body, and serializes them back without disturbing key order.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// ErrMalformed reports a metadata block that is not a decodable key-value
// document. Callers keep the original text and continue.
var ErrMalformed = errors.New("frontmatter: malformed metadata block")

// Mapping holds the top-level metadata keys of a document in insertion order.
// It wraps the decoded YAML mapping node so that untouched entries keep their
// original styles and comments across a parse/serialize round trip.
type Mapping struct {
	node *yaml.Node
}

// NewMapping returns an empty metadata mapping.
func NewMapping() *Mapping {
	return &Mapping{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

// Len returns the number of top-level keys.
func (m *Mapping) Len() int {
	return len(m.node.Content) / 2
}

// Keys returns the top-level keys in their current order.
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, m.Len())
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		keys = append(keys, m.node.Content[i].Value)
	}
	return keys
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		if m.node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Get returns the scalar value stored under key. The second return is false
// when the key is absent or its value is not a scalar.
func (m *Mapping) Get(key string) (string, bool) {
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		if m.node.Content[i].Value == key {
			v := m.node.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return "", false
			}
			return v.Value, true
		}
	}
	return "", false
}

// Set stores a string value under key. An existing key is updated in place;
// a new key is appended after all existing keys.
func (m *Mapping) Set(key, value string) {
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		if m.node.Content[i].Value == key {
			v := m.node.Content[i+1]
			v.Kind = yaml.ScalarNode
			v.Tag = "!!str"
			v.Style = 0
			v.Value = value
			v.Content = nil
			return
		}
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valueNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	m.node.Content = append(m.node.Content, keyNode, valueNode)
}

// Parse separates a document into its metadata mapping and body.
//
// A metadata block is recognized only when the document's first line is
// exactly the three-dash delimiter. The block ends at the first later line
// that equals the delimiter after trimming surrounding whitespace; the body
// is everything after that line, verbatim. With no opening delimiter or no
// closing delimiter the mapping is nil and the body is the whole original
// text. A block that fails to decode as a key-value document also returns
// the whole original text, together with ErrMalformed.
func Parse(data []byte) (*Mapping, string, error) {
	text := string(data)

	block, body, found := split(text)
	if !found {
		return nil, text, nil
	}

	node, err := decodeBlock(block)
	if err != nil {
		return nil, text, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &Mapping{node: node}, body, nil
}

// split isolates the raw metadata block between the delimiter lines. found is
// false when the text has no opening delimiter or the block is never closed.
func split(text string) (block, body string, found bool) {
	var rest string
	switch {
	case strings.HasPrefix(text, delimiter+"\n"):
		rest = text[len(delimiter)+1:]
	case strings.HasPrefix(text, delimiter+"\r\n"):
		rest = text[len(delimiter)+2:]
	case text == delimiter:
		rest = ""
	default:
		return "", "", false
	}

	offset := 0
	for offset <= len(rest) {
		next := len(rest)
		var line string
		if i := strings.IndexByte(rest[offset:], '\n'); i >= 0 {
			line = rest[offset : offset+i]
			next = offset + i + 1
		} else {
			line = rest[offset:]
		}
		if strings.TrimSpace(line) == delimiter {
			return rest[:offset], rest[next:], true
		}
		if next == len(rest) {
			break
		}
		offset = next
	}
	return "", "", false
}

// decodeBlock parses the raw block into a mapping node. Empty and null blocks
// decode to an empty mapping, which is present rather than absent.
func decodeBlock(block string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewMapping().node, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return NewMapping().node, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("document root is not a mapping")
	}
	return root, nil
}

// Serialize renders the metadata block followed by the body verbatim. Keys
// are emitted in their current order in block style with 2-space indent; an
// empty mapping renders as {}.
func Serialize(m *Mapping, body string) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m.node); err != nil {
		return "", fmt.Errorf("frontmatter: encode metadata: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("frontmatter: close encoder: %w", err)
	}

	encoded := buf.String()
	if !strings.HasSuffix(encoded, "\n") {
		encoded += "\n"
	}
	return delimiter + "\n" + encoded + delimiter + "\n" + body, nil
}
