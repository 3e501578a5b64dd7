package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"textscrub/errorhandlefunc"
	"textscrub/historyfunc"
	"textscrub/i18nfunc"
	"textscrub/logfunc"
	"textscrub/pagesfunc"
	"textscrub/prefsfunc"
	"textscrub/statefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var App = tview.NewApplication()

type options struct {
	prefsPath   string
	historyPath string
	lang        string
	logPath     string
	logLevel    string
	file        string
}

func parseFlags(args []string) (options, error) {
	configDir, err := prefsfunc.ConfigDir()
	if err != nil {
		configDir = "."
	}
	var opts options
	fs := flag.NewFlagSet("textscrub", flag.ContinueOnError)
	fs.StringVar(&opts.prefsPath, "prefs", filepath.Join(configDir, prefsfunc.PrefsFileName), "Preferences file")
	fs.StringVar(&opts.historyPath, "history", filepath.Join(configDir, historyfunc.DBFileName), "Run history database, empty to disable")
	fs.StringVar(&opts.lang, "lang", "en", "Interface language")
	fs.StringVar(&opts.logPath, "log", filepath.Join(configDir, logfunc.LogFileName), "Log file, empty to disable")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		opts.file = fs.Arg(0)
	}
	return opts, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the exit code; deferred closes happen before os.Exit.
func run(args []string) int {
	opts, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	srcFile := opts.file

	if err := i18nfunc.InitI18n(opts.lang); err != nil {
		fmt.Fprintln(os.Stderr, "Error loading translations:", err)
	}
	log, err := logfunc.Init(opts.logPath, opts.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening log:", err)
	}
	defer logfunc.Close()
	log.Info().Str("prefs", opts.prefsPath).Str("file", srcFile).Msg("starting")

	state := statefunc.NewAppState(opts.prefsPath)
	prefsErr := state.LoadPrefs()

	var history *historyfunc.Store
	var historyErr error
	if opts.historyPath != "" {
		history, historyErr = historyfunc.Open(opts.historyPath)
		if historyErr != nil {
			log.Warn().Err(historyErr).Msg("history disabled")
		} else {
			defer history.Close()
		}
	}

	App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			// tview stops on the original Ctrl+C event; a copy reaches the editor
			return tcell.NewEventKey(event.Key(), event.Rune(), event.Modifiers())
		}
		return event
	})

	mainFlex := tview.NewFlex()
	statefunc.SetState(mainFlex, App)
	App.EnableMouse(true)
	pagesfunc.ShowEditor(srcFile, state, history)
	statefunc.ShowMainVisual()

	if prefsErr != nil {
		errorType := errorhandlefunc.ErrorTypeIO
		if errors.Is(prefsErr, prefsfunc.ErrMalformed) {
			errorType = errorhandlefunc.ErrorTypeData
		}
		errorhandlefunc.ThrowError(i18nfunc.T("error.prefs_load", map[string]interface{}{"Error": prefsErr}), errorType)
	}
	if historyErr != nil {
		pagesfunc.Editor.SetErrorStatus(i18nfunc.T("status.history_error", map[string]interface{}{"Error": historyErr}))
	}

	var received os.Signal
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig, ok := <-sigs
		if !ok {
			return
		}
		App.QueueUpdate(func() {
			received = sig
			log.Info().Str("signal", sig.String()).Msg("signal received")
			pagesfunc.Quit()
		})
	}()

	err = App.Run()
	signal.Stop(sigs)
	close(sigs)
	if err != nil {
		log.Error().Err(err).Msg("application failed")
		fmt.Fprintln(os.Stderr, "Error running Application:", err)
		return 1
	}
	if err := pagesfunc.QuitError(); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving preferences:", err)
	}
	if received != nil {
		fmt.Printf("\nReceived signal %v. Exiting application...\n", received)
	}
	log.Info().Msg("stopped")
	return 0
}
