package core

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	reasonSingleCategory = "Use `type: simple` for single entries with one category"
	reasonDash           = "Refrain from using dashes inside inconsiderate terms: they’ll be stripped when looking for words"
	reasonApostrophe     = "Refrain from using apostrophes inside inconsiderate terms, they’ll be stripped when looking for words (or use `apostrophe: true`)"
)

// slugSeparators matches runs of whitespace, periods or slashes.
// RE2's \s is ASCII only, so Unicode separators are listed explicitly.
var slugSeparators = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}./]+`)

// Derive validates r and builds its Pattern.
func Derive(r NormalizedRecord) (Pattern, error) {
	if err := validate(r); err != nil {
		return Pattern{}, err
	}

	categories := r.Categories
	if categories == nil {
		categories = []string{}
	}

	return Pattern{
		ID:            PatternID(r.Inconsiderate),
		Type:          r.Type,
		Apostrophe:    r.Apostrophe,
		Categories:    categories,
		Considerate:   r.Considerate,
		Inconsiderate: r.Inconsiderate,
		Note:          PatternNote(r.Note, r.Source),
	}, nil
}

func validate(r NormalizedRecord) error {
	phrases := r.Inconsiderate.Keys()

	if r.Type != TypeSimple && len(r.Categories) < 2 {
		return &RecordError{
			Kind:    ErrSchemaViolation,
			Reason:  reasonSingleCategory,
			Phrases: phrases,
			File:    r.File,
		}
	}

	for _, phrase := range phrases {
		if strings.Contains(phrase, "-") {
			return &RecordError{
				Kind:    ErrForbiddenCharacter,
				Reason:  reasonDash,
				Phrase:  phrase,
				Phrases: phrases,
				File:    r.File,
			}
		}
		if !r.Apostrophe && strings.ContainsAny(phrase, "'’") {
			return &RecordError{
				Kind:    ErrForbiddenCharacter,
				Reason:  reasonApostrophe,
				Phrase:  phrase,
				Phrases: phrases,
				File:    r.File,
			}
		}
	}

	return nil
}

// PatternID derives the identifier of a set of inconsiderate phrases: the
// shortest phrase of every category, slugged, sorted and joined with dashes.
// The first phrase wins a tie.
func PatternID(inconsiderate *Phrases) string {
	shortest := make(map[string]string)
	inconsiderate.Each(func(phrase, category string) {
		cur, ok := shortest[category]
		if !ok || utf8.RuneCountInString(cur) > utf8.RuneCountInString(phrase) {
			shortest[category] = phrase
		}
	})

	slugs := make([]string, 0, len(shortest))
	for _, phrase := range shortest {
		slugs = append(slugs, Slug(phrase))
	}
	sort.Strings(slugs)

	return strings.Join(slugs, "-")
}

// Slug replaces every run of whitespace, periods or slashes in phrase with a dash.
func Slug(phrase string) string {
	return slugSeparators.ReplaceAllString(phrase, "-")
}

// PatternNote merges a free-text note and a source citation.
func PatternNote(note, source string) string {
	switch {
	case source == "":
		return note
	case note == "":
		return "Source: " + source
	default:
		return note + " (source: " + source + ")"
	}
}
