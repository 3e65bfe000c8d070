package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/equality/pkg/core"
)

// Serializer defines how to read records from and write datasets to a specific file format.
type Serializer interface {
	// Parse reads every record in r. file is recorded on each record.
	Parse(r io.Reader, file string) ([]core.RawRecord, error)
	// Serialize converts a compiled dataset to bytes.
	Serialize(patterns []core.Pattern) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers.
// nfc enables Unicode NFC normalization of phrases while parsing.
func DefaultSerializers(nfc bool) map[string]Serializer {
	y := NewYAMLSerializer(nfc)
	return map[string]Serializer{
		".json": NewJSONSerializer(nfc),
		".yaml": y,
		".yml":  y,
	}
}

// --- JSON Serializer ---

// JSONSerializer writes datasets as indented JSON. JSON input is parsed with
// the YAML decoder, which accepts it.
type JSONSerializer struct {
	yaml *YAMLSerializer
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer(nfc bool) *JSONSerializer {
	return &JSONSerializer{yaml: NewYAMLSerializer(nfc)}
}

func (s *JSONSerializer) Parse(r io.Reader, file string) ([]core.RawRecord, error) {
	return s.yaml.Parse(r, file)
}

// Serialize writes a two-space indented array followed by a newline.
// HTML characters and line/paragraph separators are left unescaped.
func (s *JSONSerializer) Serialize(patterns []core.Pattern) ([]byte, error) {
	if patterns == nil {
		patterns = []core.Pattern{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(patterns); err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return unescapeSeparators(buf.Bytes()), nil
}

// unescapeSeparators turns the \u2028 and \u2029 escapes encoding/json always
// emits back into raw characters. Escapes are walked pairwise so an escaped
// backslash followed by "u2028" is left alone.
func unescapeSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if rest := data[i:]; bytes.HasPrefix(rest, []byte(`\u2028`)) || bytes.HasPrefix(rest, []byte(`\u2029`)) {
			out = append(out, string(rune(0x2028+int(rest[5]-'8')))...)
			i += 5
			continue
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// --- YAML Serializer ---

// YAMLSerializer reads record files and writes datasets as YAML.
type YAMLSerializer struct {
	// NFC normalizes phrases to Unicode NFC while parsing.
	NFC bool
}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer(nfc bool) *YAMLSerializer {
	return &YAMLSerializer{NFC: nfc}
}

// Parse accepts a stream of documents. Each document is either a list of
// records or a single record; empty documents are skipped.
func (s *YAMLSerializer) Parse(r io.Reader, file string) ([]core.RawRecord, error) {
	dec := yaml.NewDecoder(r)

	var records []core.RawRecord
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}

		root := resolve(&doc)
		if root.Kind == yaml.DocumentNode {
			if len(root.Content) == 0 {
				continue
			}
			root = resolve(root.Content[0])
		}

		switch {
		case root.Kind == yaml.SequenceNode:
			for _, item := range root.Content {
				rec, err := s.decodeRecord(resolve(item), file)
				if err != nil {
					return nil, err
				}
				records = append(records, rec)
			}
		case root.Kind == yaml.MappingNode:
			rec, err := s.decodeRecord(root, file)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		case isNull(root):
			continue
		default:
			return nil, nodeError(root, "expected a list of records")
		}
	}

	return records, nil
}

func (s *YAMLSerializer) decodeRecord(node *yaml.Node, file string) (core.RawRecord, error) {
	rec := core.RawRecord{File: file}
	if node.Kind != yaml.MappingNode {
		return rec, nodeError(node, "expected a record mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := resolve(node.Content[i+1])

		var err error
		switch key {
		case "inconsiderate":
			rec.Inconsiderate, err = s.decodeField(value)
		case "considerate":
			rec.Considerate, err = s.decodeField(value)
		case "type":
			rec.Type, err = scalar(value)
		case "note":
			rec.Note, err = scalar(value)
		case "source":
			rec.Source, err = scalar(value)
		case "apostrophe":
			if !isNull(value) {
				err = value.Decode(&rec.Apostrophe)
			}
		}
		if err != nil {
			return rec, fmt.Errorf("%s: %w", key, err)
		}
	}

	return rec, nil
}

func (s *YAMLSerializer) decodeField(node *yaml.Node) (core.PhraseField, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if isNull(node) {
			return core.PhraseField{}, nil
		}
		return core.StringField(s.phrase(node.Value)), nil
	case yaml.SequenceNode:
		list := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := scalar(resolve(item))
			if err != nil {
				return core.PhraseField{}, err
			}
			list = append(list, s.phrase(v))
		}
		return core.ListField(list...), nil
	case yaml.MappingNode:
		m := core.NewPhrases()
		for i := 0; i+1 < len(node.Content); i += 2 {
			phrase, err := scalar(resolve(node.Content[i]))
			if err != nil {
				return core.PhraseField{}, err
			}
			category, err := scalar(resolve(node.Content[i+1]))
			if err != nil {
				return core.PhraseField{}, err
			}
			m.Set(s.phrase(phrase), category)
		}
		return core.MapField(m), nil
	default:
		return core.PhraseField{}, nodeError(node, "expected a phrase, a list of phrases or a mapping of phrases")
	}
}

func (s *YAMLSerializer) phrase(v string) string {
	if s.NFC {
		return norm.NFC.String(v)
	}
	return v
}

// Serialize writes the dataset as a YAML sequence, keeping phrase order.
func (s *YAMLSerializer) Serialize(patterns []core.Pattern) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, p := range patterns {
		seq.Content = append(seq.Content, patternNode(p))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- Helpers ---

func patternNode(p core.Pattern) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		n.Content = append(n.Content, str(key), value)
	}

	add("id", str(p.ID))
	if p.Type != "" {
		add("type", str(p.Type))
	}
	if p.Apostrophe {
		add("apostrophe", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
	}
	cats := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range p.Categories {
		cats.Content = append(cats.Content, str(c))
	}
	add("categories", cats)
	add("considerate", phrasesNode(p.Considerate))
	add("inconsiderate", phrasesNode(p.Inconsiderate))
	if p.Note != "" {
		add("note", str(p.Note))
	}
	return n
}

func phrasesNode(p *core.Phrases) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	p.Each(func(phrase, category string) {
		n.Content = append(n.Content, str(phrase), str(category))
	})
	return n
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func scalar(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", nodeError(n, "expected a scalar")
	}
	if isNull(n) {
		return "", nil
	}
	return n.Value, nil
}

func nodeError(n *yaml.Node, msg string) error {
	return errors.New("line " + strconv.Itoa(n.Line) + ": " + msg)
}
