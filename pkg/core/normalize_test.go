package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/equality/pkg/core"
)

func TestNormalize(t *testing.T) {
	mapping := core.NewPhrases().Set("he or she", "x").Set("s/he", "y")

	tests := []struct {
		name       string
		field      core.PhraseField
		keys       []string
		categories []string
	}{
		{"string", core.StringField("mankind"), []string{"mankind"}, []string{core.Placeholder}},
		{"list", core.ListField("chairman", "chairmen"), []string{"chairman", "chairmen"}, []string{core.Placeholder}},
		{"list with repeats", core.ListField("a", "b", "a"), []string{"a", "b"}, []string{core.Placeholder}},
		{"empty list", core.ListField(), []string{}, []string{}},
		{"mapping", core.MapField(mapping), []string{"he or she", "s/he"}, []string{"x", "y"}},
		{"missing", core.PhraseField{}, []string{}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := core.Normalize(tc.field)
			assert.Equal(t, tc.keys, got.Keys())
			assert.Equal(t, tc.categories, got.Categories())
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := core.Normalize(core.ListField("guys", "dudes"))
	twice := core.Normalize(core.MapField(once))

	assert.Same(t, once, twice)
	assert.True(t, once.Equal(twice))
}

func TestNormalizeRecord(t *testing.T) {
	raw := core.RawRecord{
		Type: "or",
		Inconsiderate: core.MapField(core.NewPhrases().
			Set("her", "female").
			Set("hers", "female").
			Set("him", "male")),
		Considerate: core.StringField("them"),
		Apostrophe:  true,
		Note:        "n",
		Source:      "s",
		File:        "gender.yml",
	}

	got := core.NormalizeRecord(raw)

	assert.Equal(t, []string{"female", "male"}, got.Categories)
	assert.Equal(t, []string{"them"}, got.Considerate.Keys())
	assert.Equal(t, "or", got.Type)
	assert.True(t, got.Apostrophe)
	assert.Equal(t, "gender.yml", got.File)
}
