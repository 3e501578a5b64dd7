package pagesfunc

import (
	"errors"

	"textscrub/i18nfunc"
	"textscrub/replacefunc"
	"textscrub/statefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// bulkReplaceDialog edits a copy of the stored pairs. Nothing reaches
// State until Save and Replace.
type bulkReplaceDialog struct {
	*tview.Flex
	builder    *replacefunc.PairListBuilder
	form       *tview.Form
	keyInput   *tview.InputField
	valueInput *tview.InputField
	pairList   *tview.List
	message    *tview.TextView
}

func showBulkReplaceDialog() {
	d := newBulkReplaceDialog(State.Pairs())
	statefunc.ShowDialog(statefunc.MainFlex, d)
	statefunc.App.SetFocus(d.keyInput)
}

func newBulkReplaceDialog(pairs replacefunc.PairList) *bulkReplaceDialog {
	d := &bulkReplaceDialog{
		Flex:       tview.NewFlex().SetDirection(tview.FlexRow),
		builder:    pairs.Builder(),
		form:       tview.NewForm(),
		keyInput:   tview.NewInputField().SetLabel(i18nfunc.T("bulk.key", nil)),
		valueInput: tview.NewInputField().SetLabel(i18nfunc.T("bulk.value", nil)),
		pairList:   tview.NewList().ShowSecondaryText(false),
		message:    tview.NewTextView().SetDynamicColors(true),
	}

	d.valueInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			d.addPair()
		}
	})
	d.form.AddFormItem(d.keyInput).
		AddFormItem(d.valueInput).
		AddButton(i18nfunc.T("bulk.add", nil), d.addPair).
		AddButton(i18nfunc.T("bulk.remove", nil), d.removeSelected).
		AddButton(i18nfunc.T("bulk.apply", nil), d.saveAndReplace).
		AddButton(i18nfunc.T("button.cancel", nil), d.cancel)
	d.form.SetCancelFunc(d.cancel)

	for _, p := range d.builder.Pairs() {
		d.pairList.AddItem(tview.Escape(p.String()), "", 0, nil)
	}
	d.pairList.SetBorder(true).SetTitle(" " + i18nfunc.T("bulk.pairs", nil) + " ")
	d.pairList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyBacktab:
			statefunc.App.SetFocus(d.form)
			return nil
		case tcell.KeyDelete:
			d.removeSelected()
			return nil
		case tcell.KeyEscape:
			d.cancel()
			return nil
		}
		return event
	})

	d.message.SetText(tview.Escape(i18nfunc.T("bulk.hint", nil)))

	d.AddItem(d.form, 7, 0, true).
		AddItem(d.pairList, 0, 1, false).
		AddItem(d.message, 1, 0, false)
	d.SetBorder(true).SetTitle(" " + i18nfunc.T("bulk.title", nil) + " ")
	d.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyF2 {
			if d.pairList.HasFocus() {
				statefunc.App.SetFocus(d.form)
			} else {
				statefunc.App.SetFocus(d.pairList)
			}
			return nil
		}
		return event
	})
	return d
}

func (d *bulkReplaceDialog) addPair() {
	p, err := d.builder.Add(d.keyInput.GetText(), d.valueInput.GetText())
	if err != nil {
		msg := "bulk.error_empty_key"
		if errors.Is(err, replacefunc.ErrEmptyValue) {
			msg = "bulk.error_empty_value"
		}
		d.showError(i18nfunc.T(msg, nil))
		return
	}
	d.pairList.AddItem(tview.Escape(p.String()), "", 0, nil)
	d.pairList.SetCurrentItem(-1)
	d.keyInput.SetText("")
	d.valueInput.SetText("")
	d.message.SetText(tview.Escape(i18nfunc.N("bulk.count", d.builder.Len())))
	statefunc.App.SetFocus(d.keyInput)
}

func (d *bulkReplaceDialog) removeSelected() {
	if d.builder.Len() == 0 {
		return
	}
	idx := d.pairList.GetCurrentItem()
	if err := d.builder.Remove(idx); err != nil {
		d.showError(err.Error())
		return
	}
	d.pairList.RemoveItem(idx)
	d.message.SetText(tview.Escape(i18nfunc.N("bulk.count", d.builder.Len())))
}

// saveAndReplace stores the pairs, writes the preferences file and runs
// the replace over the document.
func (d *bulkReplaceDialog) saveAndReplace() {
	State.SetPairs(d.builder.Build())
	err := SavePrefs()
	statefunc.ShowMainVisual()
	if err == nil {
		Editor.SetStatus(i18nfunc.T("status.prefs_saved", map[string]interface{}{"Path": State.PrefsPath()}))
	}
	RunReplace(replacefunc.Forward)
	if err != nil {
		ErrorMessage(i18nfunc.T("status.prefs_error", map[string]interface{}{"Error": err}))
	}
}

func (d *bulkReplaceDialog) cancel() {
	statefunc.ShowMainVisual()
}

func (d *bulkReplaceDialog) showError(msg string) {
	d.message.SetText("[red]" + tview.Escape(msg) + "[-]")
}
