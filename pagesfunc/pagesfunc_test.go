package pagesfunc

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"textscrub/editorfunc"
	"textscrub/historyfunc"
	"textscrub/i18nfunc"
	"textscrub/prefsfunc"
	"textscrub/replacefunc"
	"textscrub/statefunc"
	"textscrub/themefunc"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	i18nfunc.ExternalDir = filepath.Join(os.TempDir(), "textscrub-no-translations")
	if err := i18nfunc.InitI18n("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func setup(t *testing.T, text string) string {
	t.Helper()
	statefunc.SetState(tview.NewFlex(), tview.NewApplication())
	prefsPath := filepath.Join(t.TempDir(), "cfg", prefsfunc.PrefsFileName)
	State = statefunc.NewAppState(prefsPath)
	History = nil
	Editor = editorfunc.NewTextEditor("")
	Editor.SetText(text)
	return prefsPath
}

func TestBulkReplaceDialogEditsCopy(t *testing.T) {
	setup(t, "foo")
	State.SetPairs(replacefunc.NewPairList(replacefunc.Pair{Key: "a", Value: "b"}))

	d := newBulkReplaceDialog(State.Pairs())
	assert.Equal(t, 1, d.pairList.GetItemCount())

	d.keyInput.SetText(" foo ")
	d.valueInput.SetText("bar")
	d.addPair()
	assert.Equal(t, 2, d.pairList.GetItemCount())
	text, _ := d.pairList.GetItemText(1)
	assert.Equal(t, "foo: bar", text)
	assert.Empty(t, d.keyInput.GetText())
	assert.Equal(t, "2 pairs", d.message.GetText(true))

	d.valueInput.SetText("x")
	d.addPair()
	assert.Equal(t, "Key must not be empty", d.message.GetText(true))
	assert.Equal(t, 2, d.builder.Len())

	d.pairList.SetCurrentItem(0)
	d.removeSelected()
	assert.Equal(t, 1, d.pairList.GetItemCount())
	assert.Equal(t, []replacefunc.Pair{{Key: "foo", Value: "bar"}}, d.builder.Pairs())

	// nothing reaches the state before Save and Replace
	assert.Equal(t, []replacefunc.Pair{{Key: "a", Value: "b"}}, State.Pairs().Pairs())
	d.cancel()
	assert.Equal(t, []replacefunc.Pair{{Key: "a", Value: "b"}}, State.Pairs().Pairs())
}

func TestBulkReplaceSaveAndReplace(t *testing.T) {
	prefsPath := setup(t, "Foo and foo")
	d := newBulkReplaceDialog(State.Pairs())
	d.keyInput.SetText("foo")
	d.valueInput.SetText("bar")
	d.addPair()
	d.saveAndReplace()

	assert.Equal(t, "bar and bar", Editor.Text())
	assert.Equal(t, "Performed 2 replacements", Editor.GetStatusBar().Status())
	assert.Equal(t, 1, State.Pairs().Len())

	doc, err := prefsfunc.Load(prefsPath)
	require.NoError(t, err)
	assert.Equal(t, []replacefunc.Pair{{Key: "foo", Value: "bar"}}, doc.Pairs.Pairs())
}

func TestRunReplaceRecordsHistory(t *testing.T) {
	setup(t, "cat cat")
	store, err := historyfunc.Open(filepath.Join(t.TempDir(), historyfunc.DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	History = store

	State.SetPairs(replacefunc.NewPairList(replacefunc.Pair{Key: "cat", Value: "dog"}))
	assert.Equal(t, 2, RunReplace(replacefunc.Forward))
	assert.Equal(t, 2, RunReplace(replacefunc.Reverse))
	assert.Equal(t, "cat cat", Editor.Text())

	runs, err := store.RecentRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "reverse", runs[0].Mode)
	assert.Equal(t, 1, runs[0].PairCount)
	assert.Equal(t, 2, runs[0].Replacements)
}

func TestOpenAndSaveTouchRecentFiles(t *testing.T) {
	setup(t, "")
	store, err := historyfunc.Open(filepath.Join(t.TempDir(), historyfunc.DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	History = store

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))
	OpenPath(path)
	assert.Equal(t, "hello", Editor.Text())
	SaveCurrent()

	assert.Equal(t, []string{path}, recentFiles())
}

func TestApplyThemeUpdatesState(t *testing.T) {
	setup(t, "")
	ApplyTheme(themefunc.Dark)
	assert.Equal(t, themefunc.Dark, State.Theme())
	assert.Equal(t, themefunc.PaletteFor(themefunc.Dark).DialogBg, tview.Styles.PrimitiveBackgroundColor)
	ApplyTheme(themefunc.Standard)
}

func TestHistoryRows(t *testing.T) {
	when := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	rows := historyRows([]historyfunc.Run{
		{CreatedAt: when, Mode: "reverse", FileName: "/tmp/a/b.txt", PairCount: 2, Replacements: 5},
		{CreatedAt: when, Mode: "forward", PairCount: 1},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, []string{when.Local().Format("2006-01-02 15:04:05"), "reverse", "b.txt", "2", "5"}, rows[0])
	assert.Equal(t, "(untitled)", rows[1][2])
	assert.Len(t, historyColumns(), len(rows[0]))
}

func TestQuitSavesPrefs(t *testing.T) {
	prefsPath := setup(t, "")
	State.SetTheme(themefunc.Light)
	Quit()
	require.NoError(t, QuitError())

	doc, err := prefsfunc.Load(prefsPath)
	require.NoError(t, err)
	assert.Equal(t, themefunc.Light, doc.Theme)
}

func TestPairKeysFollowState(t *testing.T) {
	setup(t, "")
	assert.Empty(t, pairKeys())
	State.SetPairs(replacefunc.NewPairList(
		replacefunc.Pair{Key: "alpha", Value: "a"},
		replacefunc.Pair{Key: "beta", Value: "b"},
	))
	assert.Equal(t, []string{"alpha", "beta"}, pairKeys())
}
