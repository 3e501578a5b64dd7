package pagesfunc

import (
	"context"
	"path/filepath"
	"strconv"

	"textscrub/historyfunc"
	"textscrub/i18nfunc"
	"textscrub/logfunc"
	"textscrub/timefunc"
	"textscrub/uifunc"
)

const historyLimit = 50

func historyColumns() []string {
	return []string{
		i18nfunc.T("history.when", nil),
		i18nfunc.T("history.mode", nil),
		i18nfunc.T("history.file", nil),
		i18nfunc.T("history.pairs", nil),
		i18nfunc.T("history.replacements", nil),
	}
}

// historyRows formats runs for the history table.
func historyRows(runs []historyfunc.Run) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		file := i18nfunc.T("history.untitled", nil)
		if r.FileName != "" {
			file = filepath.Base(r.FileName)
		}
		rows = append(rows, []string{
			timefunc.FormatDateTime(r.CreatedAt, i18nfunc.T("history.datetime_format", nil)),
			i18nfunc.T("history.mode."+r.Mode, nil),
			file,
			strconv.Itoa(r.PairCount),
			strconv.Itoa(r.Replacements),
		})
	}
	return rows
}

func showHistoryPage() {
	if History == nil {
		Editor.SetErrorStatus(i18nfunc.T("status.history_disabled", nil))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
	defer cancel()
	runs, err := History.RecentRuns(ctx, historyLimit)
	if err != nil {
		logfunc.Component("history").Warn().Err(err).Msg("recent runs")
		ErrorMessage(i18nfunc.T("status.history_error", map[string]interface{}{"Error": err}))
		return
	}
	b := uifunc.NewBrowser(i18nfunc.T("history.title", nil), historyColumns())
	b.SetRows(historyRows(runs))
	b.Show()
}
