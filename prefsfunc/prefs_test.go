package prefsfunc

import (
	"os"
	"path/filepath"
	"testing"

	"textscrub/replacefunc"
	"textscrub/themefunc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Pairs.Len())
	assert.Equal(t, themefunc.Standard, doc.Theme)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), PrefsFileName)
	content := `{"bulk_replace_pairs": [["foo", "bar"], ["Acme", "ACME Corp"]], "selected_theme": "Dark"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []replacefunc.Pair{{Key: "foo", Value: "bar"}, {Key: "Acme", Value: "ACME Corp"}}, doc.Pairs.Pairs())
	assert.Equal(t, themefunc.Dark, doc.Theme)
}

func TestLoadMissingThemeDefaultsToStandard(t *testing.T) {
	doc, err := Decode([]byte(`{"bulk_replace_pairs": []}`))
	require.NoError(t, err)
	assert.Equal(t, themefunc.Standard, doc.Theme)
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{"bulk_replace_pairs": [`},
		{"pair too short", `{"bulk_replace_pairs": [["foo"]]}`},
		{"pair not strings", `{"bulk_replace_pairs": [[1, 2]]}`},
		{"empty key", `{"bulk_replace_pairs": [["", "x"]]}`},
		{"blank key", `{"bulk_replace_pairs": [[" ", "_"]]}`},
		{"blank value", `{"bulk_replace_pairs": [["foo", "\t"]]}`},
		{"unknown theme", `{"bulk_replace_pairs": [], "selected_theme": "Solarized"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), PrefsFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			doc, err := Load(path)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Equal(t, Default(), doc)
		})
	}
}

func TestDecodeBlankKeyNamesCause(t *testing.T) {
	doc, err := Decode([]byte(`{"bulk_replace_pairs": [["foo", "bar"], [" ", "_"]]}`))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.ErrorIs(t, err, replacefunc.ErrEmptyKey)
	assert.Equal(t, 0, doc.Pairs.Len())
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", AppDirName, PrefsFileName)
	doc := Document{
		Pairs: replacefunc.NewPairList(replacefunc.Pair{Key: "foo", Value: "bar"}),
		Theme: themefunc.Light,
	}
	require.NoError(t, Save(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bulk_replace_pairs": [["foo","bar"]], "selected_theme": "Light"}`, string(data))
}

func TestSaveEmptyPairsWritesArray(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)
	assert.JSONEq(t, `{"bulk_replace_pairs": [], "selected_theme": "Standard"}`, string(data))
}

func TestSaveReportsIOError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	err := Save(filepath.Join(blocker, PrefsFileName), Default())
	assert.ErrorIs(t, err, ErrSave)
}

func TestRoundTripIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), PrefsFileName)
	doc := Document{
		Pairs: replacefunc.NewPairList(
			replacefunc.Pair{Key: "a & b", Value: "<c>"},
			replacefunc.Pair{Key: "ü", Value: "ue"},
			replacefunc.Pair{Key: "a & b", Value: "dup"},
		),
		Theme: themefunc.Dark,
	}
	require.NoError(t, Save(path, doc))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Pairs.Pairs(), loaded.Pairs.Pairs())
	assert.Equal(t, doc.Theme, loaded.Theme)

	require.NoError(t, Save(path, loaded))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
