package pagesfunc

import (
	"context"
	"time"

	"textscrub/editorfunc"
	"textscrub/historyfunc"
	"textscrub/i18nfunc"
	"textscrub/logfunc"
	"textscrub/replacefunc"
	"textscrub/statefunc"
	"textscrub/themefunc"
)

const historyTimeout = 2 * time.Second

var Editor *editorfunc.TextEditor

// State holds the bulk replace pairs and the theme.
var State *statefunc.AppState

// History may be nil when run history is disabled.
var History *historyfunc.Store

var mainMenu *MainMenu

// ShowEditor builds the editor screen and puts it into statefunc.MainFlex.
func ShowEditor(path string, state *statefunc.AppState, history *historyfunc.Store) {
	State = state
	History = history
	Editor = editorfunc.NewTextEditor(path)
	Editor.SetMouseSupport()
	flex := AddMainMenuToEditor(Editor, Editor.GetStatusBar())
	statefunc.MainFlex.AddItem(flex, 0, 1, true)
	ApplyTheme(state.Theme())
	if path != "" {
		touchRecent(path)
	}
}

// ApplyTheme recolours the whole UI and remembers the choice.
func ApplyTheme(t themefunc.Theme) {
	p := themefunc.PaletteFor(t)
	themefunc.Apply(p)
	State.SetTheme(t)
	if Editor != nil {
		Editor.SetTheme(p)
	}
	if mainMenu != nil {
		mainMenu.setPalette(p)
	}
	logfunc.Component("ui").Debug().Str("theme", t.String()).Msg("theme applied")
}

// OpenPath loads path into the editor and records it as recent.
func OpenPath(path string) {
	if err := Editor.OpenFile(path); err != nil {
		ErrorMessage(i18nfunc.T("status.open_error", map[string]interface{}{"Error": err}))
		return
	}
	touchRecent(path)
}

// SaveCurrent saves to the current file or asks for a name.
func SaveCurrent() {
	if Editor.FileName() == "" {
		showSaveAsDialog()
		return
	}
	if err := Editor.SaveFile(); err == nil {
		touchRecent(Editor.FileName())
	}
}

// RunReplace applies the stored pairs to the document and records the run.
func RunReplace(mode replacefunc.Mode) int {
	pairs := State.Pairs()
	res := Editor.ApplyReplace(pairs, mode)
	if History != nil {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		err := History.RecordRun(ctx, historyfunc.Run{
			Mode:         mode.String(),
			FileName:     Editor.FileName(),
			PairCount:    pairs.Len(),
			Replacements: res.Count,
		})
		if err != nil {
			logfunc.Component("history").Warn().Err(err).Msg("record run")
		}
	}
	return res.Count
}

// SavePrefs writes the preferences file, logging a failure.
func SavePrefs() error {
	err := State.SavePrefs()
	if err != nil {
		logfunc.Component("prefs").Error().Err(err).Str("path", State.PrefsPath()).Msg("save preferences")
		return err
	}
	logfunc.Component("prefs").Info().Str("path", State.PrefsPath()).Msg("preferences saved")
	return nil
}

var quitErr error

// Quit saves preferences and stops the application.
func Quit() {
	quitErr = SavePrefs()
	statefunc.App.Stop()
}

// QuitError is the preferences save error of the last Quit.
func QuitError() error {
	return quitErr
}

func touchRecent(path string) {
	if History == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
	defer cancel()
	if err := History.TouchRecentFile(ctx, path); err != nil {
		logfunc.Component("history").Warn().Err(err).Str("file", path).Msg("touch recent file")
	}
}
