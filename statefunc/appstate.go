package statefunc

import (
	"textscrub/prefsfunc"
	"textscrub/replacefunc"
	"textscrub/themefunc"
)

// AppState is the editor's persistent state: the bulk replace pairs and
// the selected theme, plus where they are stored.
type AppState struct {
	prefsPath string
	pairs     replacefunc.PairList
	theme     themefunc.Theme
}

func NewAppState(prefsPath string) *AppState {
	return &AppState{prefsPath: prefsPath, theme: themefunc.Standard}
}

func (s *AppState) PrefsPath() string { return s.prefsPath }

// LoadPrefs replaces the state with the preferences file. On a malformed
// file the defaults are kept and the error is returned.
func (s *AppState) LoadPrefs() error {
	doc, err := prefsfunc.Load(s.prefsPath)
	s.pairs = doc.Pairs
	s.theme = doc.Theme
	return err
}

func (s *AppState) SavePrefs() error {
	return prefsfunc.Save(s.prefsPath, s.Snapshot())
}

func (s *AppState) Snapshot() prefsfunc.Document {
	return prefsfunc.Document{Pairs: s.pairs, Theme: s.theme}
}

func (s *AppState) Pairs() replacefunc.PairList { return s.pairs }

func (s *AppState) SetPairs(pairs replacefunc.PairList) { s.pairs = pairs }

func (s *AppState) Theme() themefunc.Theme { return s.theme }

func (s *AppState) SetTheme(t themefunc.Theme) { s.theme = t }
