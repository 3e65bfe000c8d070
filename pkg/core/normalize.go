package core

// Normalize collapses a phrase field into a mapping. Bare phrases and lists
// get the Placeholder category; mappings are returned as they are.
func Normalize(f PhraseField) *Phrases {
	switch f.Kind {
	case FieldString:
		return Normalize(ListField(f.Phrase))
	case FieldList:
		m := NewPhrases()
		for _, phrase := range f.List {
			m.Set(phrase, Placeholder)
		}
		return m
	case FieldMap:
		if f.Map == nil {
			return NewPhrases()
		}
		return f.Map
	default:
		return NewPhrases()
	}
}

// NormalizeRecord normalizes both phrase fields of r and derives its categories.
func NormalizeRecord(r RawRecord) NormalizedRecord {
	inconsiderate := Normalize(r.Inconsiderate)
	return NormalizedRecord{
		Inconsiderate: inconsiderate,
		Considerate:   Normalize(r.Considerate),
		Categories:    inconsiderate.Categories(),
		Type:          r.Type,
		Apostrophe:    r.Apostrophe,
		Note:          r.Note,
		Source:        r.Source,
		File:          r.File,
	}
}
