package core

// FieldKind tells which of the accepted shapes a phrase field was written in.
type FieldKind int

const (
	FieldNone FieldKind = iota
	FieldString
	FieldList
	FieldMap
)

// PhraseField is a phrase field as authored: a single phrase, a list of
// phrases, or a mapping of phrase to category.
type PhraseField struct {
	Kind   FieldKind
	Phrase string
	List   []string
	Map    *Phrases
}

// StringField wraps a single phrase.
func StringField(phrase string) PhraseField {
	return PhraseField{Kind: FieldString, Phrase: phrase}
}

// ListField wraps a list of phrases.
func ListField(phrases ...string) PhraseField {
	return PhraseField{Kind: FieldList, List: phrases}
}

// MapField wraps a phrase to category mapping.
func MapField(m *Phrases) PhraseField {
	return PhraseField{Kind: FieldMap, Map: m}
}

// RawRecord is one entry as read from a data file.
type RawRecord struct {
	Inconsiderate PhraseField
	Considerate   PhraseField
	Type          string
	Apostrophe    bool
	Note          string
	Source        string

	// File is where the record was read from. It is not part of the output.
	File string
}

// NormalizedRecord is a RawRecord with both phrase fields collapsed into
// mappings and its categories derived.
type NormalizedRecord struct {
	Inconsiderate *Phrases
	Considerate   *Phrases
	Categories    []string
	Type          string
	Apostrophe    bool
	Note          string
	Source        string
	File          string
}

// TypeSimple marks a record with a single implicit category.
const TypeSimple = "simple"

// Pattern is a compiled record, the unit of the output dataset.
type Pattern struct {
	ID            string   `json:"id"`
	Type          string   `json:"type,omitempty"`
	Apostrophe    bool     `json:"apostrophe,omitempty"`
	Categories    []string `json:"categories"`
	Considerate   *Phrases `json:"considerate"`
	Inconsiderate *Phrases `json:"inconsiderate"`
	Note          string   `json:"note,omitempty"`
}
