package core

import (
	"bytes"
	"encoding/json"
)

// Placeholder is the category given to phrases that were listed without one.
const Placeholder = "a"

// Phrases maps phrases to category labels and remembers insertion order.
// The zero value is an empty mapping ready to use.
type Phrases struct {
	keys   []string
	values map[string]string
}

// NewPhrases returns an empty mapping.
func NewPhrases() *Phrases {
	return &Phrases{values: make(map[string]string)}
}

// Set assigns category to phrase. Re-assigning an existing phrase keeps its
// original position.
func (p *Phrases) Set(phrase, category string) *Phrases {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[phrase]; !ok {
		p.keys = append(p.keys, phrase)
	}
	p.values[phrase] = category
	return p
}

// Get returns the category of phrase.
func (p *Phrases) Get(phrase string) (string, bool) {
	if p == nil {
		return "", false
	}
	c, ok := p.values[phrase]
	return c, ok
}

// Len returns the number of phrases.
func (p *Phrases) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the phrases in insertion order.
func (p *Phrases) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Each calls fn for every phrase in insertion order.
func (p *Phrases) Each(fn func(phrase, category string)) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		fn(k, p.values[k])
	}
}

// Categories returns the distinct category labels in first-seen order.
func (p *Phrases) Categories() []string {
	seen := make(map[string]struct{})
	out := []string{}
	p.Each(func(_, category string) {
		if _, ok := seen[category]; ok {
			return
		}
		seen[category] = struct{}{}
		out = append(out, category)
	})
	return out
}

// Clone returns an independent copy.
func (p *Phrases) Clone() *Phrases {
	c := NewPhrases()
	p.Each(func(phrase, category string) {
		c.Set(phrase, category)
	})
	return c
}

// Equal reports whether both mappings hold the same pairs in the same order.
func (p *Phrases) Equal(o *Phrases) bool {
	if p.Len() != o.Len() {
		return false
	}
	if p.Len() == 0 {
		return true
	}
	for i, k := range p.keys {
		if o.keys[i] != k || o.values[k] != p.values[k] {
			return false
		}
	}
	return true
}

// MarshalJSON writes the mapping as a JSON object in insertion order.
func (p *Phrases) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, p.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
