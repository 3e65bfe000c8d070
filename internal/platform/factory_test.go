package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/equality/pkg/core"
)

type memSource struct{ records []core.RawRecord }

func (m memSource) Load(ctx context.Context) ([]core.RawRecord, error) { return m.records, nil }

type memSink struct{ got []core.Pattern }

func (m *memSink) Write(ctx context.Context, patterns []core.Pattern) error {
	m.got = patterns
	return nil
}

func TestNew_FS(t *testing.T) {
	root := t.TempDir()
	data := "- {type: simple, considerate: humankind, inconsiderate: mankind}\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "words.yml"), []byte(data), 0644))
	out := filepath.Join(t.TempDir(), "lib", "patterns.json")

	svc, err := New(root, WithOutput(out), WithMustExist(true))
	require.NoError(t, err)

	patterns, err := svc.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	_, err = os.Stat(out)
	assert.NoError(t, err)

	state := svc.State().(core.ServiceState)
	assert.Equal(t, "fs", state.SourceType)
	assert.Equal(t, "fs", state.SinkType)
}

func TestNew_MustExist(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), WithMustExist(true))
	assert.Error(t, err)
}

func TestNew_UnknownAdapter(t *testing.T) {
	_, err := New(t.TempDir(), WithAdapter("s3"))
	assert.Error(t, err)
}

func TestNew_Injected(t *testing.T) {
	sink := &memSink{}
	source := memSource{records: []core.RawRecord{{
		Type:          core.TypeSimple,
		Inconsiderate: core.StringField("mankind"),
		Considerate:   core.StringField("humankind"),
	}}}

	// Fully injected services never touch the adapter.
	svc, err := New("", WithAdapter("none"), WithSource(source), WithSink(sink))
	require.NoError(t, err)

	_, err = svc.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, sink.got, 1)
	assert.Equal(t, "mankind", sink.got[0].ID)
}

func TestNew_InjectedSinkOnly(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.yml"), []byte("- {type: simple, inconsiderate: guys}\n"), 0644))

	sink := &memSink{}
	svc, err := New(root, WithSink(sink))
	require.NoError(t, err)

	_, err = svc.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, sink.got, 1)

	_, err = os.Stat(filepath.Join(root, "patterns.json"))
	assert.True(t, os.IsNotExist(err))
}
