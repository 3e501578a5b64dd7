package pagesfunc

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"textscrub/i18nfunc"
	"textscrub/logfunc"
	"textscrub/statefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const recentLimit = 5

// startDir is where file dialogs begin: the current file's directory or
// the working directory.
func startDir() string {
	if Editor != nil && Editor.FileName() != "" {
		return filepath.Dir(Editor.FileName())
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

func recentFiles() []string {
	if History == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
	defer cancel()
	files, err := History.RecentFiles(ctx, recentLimit)
	if err != nil {
		logfunc.Component("history").Warn().Err(err).Msg("recent files")
		return nil
	}
	return files
}

// dirEntries lists directories first, then files, each sorted by name.
func dirEntries(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
	return entries, nil
}

// showOpenFileDialog displays a dialog to choose and open a file.
// Recently used files are listed above the directory contents.
func showOpenFileDialog(currentDir string, onOpen func(string)) {
	fileList := tview.NewList().ShowSecondaryText(false)
	fileList.SetBorder(true)

	open := func(p string) {
		statefunc.ShowMainVisual()
		onOpen(p)
	}

	fileList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			statefunc.ShowMainVisual()
			return nil
		}
		return event
	})

	var refreshList func(dir string)
	refreshList = func(dir string) {
		fileList.Clear()
		fileList.SetTitle(" " + i18nfunc.T("dialog.open.title", nil) + " - " + dir + " ")

		for _, p := range recentFiles() {
			path := p
			fileList.AddItem("[::b]"+tview.Escape(i18nfunc.T("dialog.open.recent", nil))+"[-:-:-] "+tview.Escape(path), "", 0, func() {
				open(path)
			})
		}

		if parent := filepath.Dir(dir); parent != dir {
			fileList.AddItem("../", "", 0, func() {
				refreshList(parent)
			})
		}

		entries, err := dirEntries(dir)
		if err != nil {
			fileList.AddItem("[red]"+tview.Escape(i18nfunc.T("dialog.open.error", map[string]interface{}{"Error": err})), "", 0, nil)
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			fullPath := filepath.Join(dir, name)
			if entry.IsDir() {
				fileList.AddItem("[::b]"+tview.Escape("[DIR]")+"[-:-:-] "+tview.Escape(name), "", 0, func(p string) func() {
					return func() {
						refreshList(p)
					}
				}(fullPath))
				continue
			}
			fileList.AddItem(tview.Escape(name), "", 0, func(p string) func() {
				return func() {
					open(p)
				}
			}(fullPath))
		}
	}

	refreshList(currentDir)

	flex := tview.NewFlex().
		AddItem(fileList, 0, 1, true)
	statefunc.ShowDialog(statefunc.MainFlex, flex)
}
