package main

import (
	"path/filepath"
	"testing"

	"textscrub/historyfunc"
	"textscrub/prefsfunc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, prefsfunc.PrefsFileName, filepath.Base(opts.prefsPath))
	assert.Equal(t, historyfunc.DBFileName, filepath.Base(opts.historyPath))
	assert.Equal(t, "en", opts.lang)
	assert.Equal(t, "info", opts.logLevel)
	assert.Empty(t, opts.file)
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-prefs", "/tmp/p.json", "-history", "", "-lang", "ru", "notes.txt"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/p.json", opts.prefsPath)
	assert.Empty(t, opts.historyPath)
	assert.Equal(t, "ru", opts.lang)
	assert.Equal(t, "notes.txt", opts.file)
}

func TestRunReturnsCodeOnBadFlag(t *testing.T) {
	assert.Equal(t, 2, run([]string{"-no-such-flag"}))
}

func TestRunHelpExitsCleanly(t *testing.T) {
	assert.Equal(t, 0, run([]string{"-h"}))
}
