package pagesfunc

import (
	"textscrub/i18nfunc"
	"textscrub/statefunc"
	"textscrub/themefunc"

	"github.com/rivo/tview"
)

// ErrorMessage shows text in a modal over the current screen.
func ErrorMessage(text string) {
	dialog := tview.NewModal()
	dialog.SetText(text)
	dialog.AddButtons([]string{i18nfunc.T("button.ok", nil)})
	dialog.SetTitle(" " + i18nfunc.T("dialog.error.title", nil) + " ")
	dialog.SetTextColor(tview.Styles.PrimaryTextColor)
	dialog.SetBackgroundColor(tview.Styles.ContrastBackgroundColor)
	if State != nil {
		dialog.SetBorderColor(themefunc.PaletteFor(State.Theme()).StatusErrorFg)
	}
	dialog.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		statefunc.ShowPreviousVisual()
	})
	statefunc.ShowDialog(statefunc.Root(), dialog)
}
