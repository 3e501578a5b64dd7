package inputfunc

import (
	"strings"

	"github.com/rivo/tview"
)

// Matches returns the choices that start with text, ignoring case.
// Duplicates are dropped and the order of choices is kept.
func Matches(text string, choices []string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var out []string
	for _, c := range choices {
		if seen[c] || !strings.HasPrefix(strings.ToLower(c), lower) {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// SetChoiceInput makes the input suggest entries from choices while typing.
// choices is called on every change so the list can follow the caller's state.
func SetChoiceInput(input *tview.InputField, choices func() []string) {
	input.SetAutocompleteFunc(func(currentText string) (entries []string) {
		return Matches(currentText, choices())
	})
	input.SetAutocompletedFunc(func(text string, index, source int) bool {
		if source != tview.AutocompletedNavigate {
			input.SetText(text)
		}
		return source == tview.AutocompletedEnter || source == tview.AutocompletedClick
	})
}
