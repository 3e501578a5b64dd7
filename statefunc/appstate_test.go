package statefunc

import (
	"os"
	"path/filepath"
	"testing"

	"textscrub/prefsfunc"
	"textscrub/replacefunc"
	"textscrub/themefunc"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppStateSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsfunc.PrefsFileName)
	s := NewAppState(path)
	require.NoError(t, s.LoadPrefs(), "a missing file is not an error")
	assert.Equal(t, themefunc.Standard, s.Theme())
	assert.Zero(t, s.Pairs().Len())

	s.SetPairs(replacefunc.NewPairList(replacefunc.Pair{Key: "foo", Value: "bar"}))
	s.SetTheme(themefunc.Light)
	require.NoError(t, s.SavePrefs())

	other := NewAppState(path)
	require.NoError(t, other.LoadPrefs())
	assert.Equal(t, themefunc.Light, other.Theme())
	assert.Equal(t, s.Pairs().Pairs(), other.Pairs().Pairs())
	assert.Equal(t, path, other.PrefsPath())
}

func TestAppStateMalformedKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsfunc.PrefsFileName)
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0600))

	s := NewAppState(path)
	s.SetTheme(themefunc.Dark)
	err := s.LoadPrefs()
	assert.ErrorIs(t, err, prefsfunc.ErrMalformed)
	assert.Equal(t, themefunc.Standard, s.Theme())
}

func TestVisualStack(t *testing.T) {
	SetState(tview.NewFlex(), tview.NewApplication())
	assert.Nil(t, PopVisual())

	a, b := tview.NewBox(), tview.NewBox()
	PushVisual(a)
	PushVisual(b)
	assert.Same(t, b, PopVisual())
	assert.Same(t, a, PopVisual())
	assert.Nil(t, PopVisual())
}

func TestShowDialogRestoresPrevious(t *testing.T) {
	mainFlex := tview.NewFlex()
	SetState(mainFlex, tview.NewApplication())
	ShowMainVisual()
	assert.Same(t, mainFlex, Root())

	dialog, confirm := tview.NewBox(), tview.NewBox()
	ShowDialog(Root(), dialog)
	ShowDialog(Root(), confirm)
	assert.Same(t, confirm, Root())

	ShowPreviousVisual()
	assert.Same(t, dialog, Root())
	ShowPreviousVisual()
	assert.Same(t, mainFlex, Root())

	// empty stack falls back to the main screen
	ShowDialog(nil, dialog)
	ShowPreviousVisual()
	assert.Same(t, mainFlex, Root())
}
