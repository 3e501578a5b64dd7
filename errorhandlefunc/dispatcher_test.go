package errorhandlefunc

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"textscrub/i18nfunc"
	"textscrub/logfunc"
	"textscrub/statefunc"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"
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

func TestThrowErrorLogsAndShowsModal(t *testing.T) {
	tests := []struct {
		name      string
		msg       string
		errorType int
	}{
		{"data", "bad data", ErrorTypeData},
		{"io", "disk full", ErrorTypeIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			prev := logfunc.Log
			logfunc.Log = logfunc.New(&buf, zerolog.DebugLevel)
			t.Cleanup(func() { logfunc.Log = prev })

			mainFlex := tview.NewFlex()
			statefunc.SetState(mainFlex, tview.NewApplication())
			statefunc.ShowMainVisual()

			ThrowError(tt.msg, tt.errorType)

			assert.Contains(t, buf.String(), `"component":"error"`)
			assert.Contains(t, buf.String(), tt.msg)
			_, ok := statefunc.Root().(*tview.Modal)
			require.True(t, ok, "error modal on screen")

			statefunc.ShowPreviousVisual()
			assert.Same(t, mainFlex, statefunc.Root())
		})
	}
}
