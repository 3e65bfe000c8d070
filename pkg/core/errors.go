package core

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every compile failure wraps exactly one of them.
var (
	ErrSchemaViolation    = errors.New("schema violation")
	ErrForbiddenCharacter = errors.New("forbidden character")
	ErrDuplicatePhrase    = errors.New("duplicate phrase")
)

// RecordError reports a record that failed validation.
type RecordError struct {
	Kind error
	// Reason is the author-facing explanation, without the phrase list.
	Reason string
	// Phrase is the offending phrase, empty for schema violations.
	Phrase string
	// Phrases lists every inconsiderate phrase of the record so the author can find it.
	Phrases []string
	File    string
}

func (e *RecordError) Error() string {
	msg := e.Reason + ": " + strings.Join(e.Phrases, ", ")
	if e.File != "" {
		return e.File + ": " + msg
	}
	return msg
}

func (e *RecordError) Unwrap() error {
	return e.Kind
}

// DuplicateError reports phrases that occur in more than one record.
type DuplicateError struct {
	Phrases []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("Refrain from multiple entries:\n  %s", strings.Join(e.Phrases, ", "))
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicatePhrase
}
