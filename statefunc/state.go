package statefunc

import (
	"github.com/rivo/tview"
)

var MainMenuFlex *tview.Flex
var EditorFlex *tview.Flex
var MainFlex *tview.Flex
var App *tview.Application
var visualStack *[]tview.Primitive
var root tview.Primitive

func SetState(mainFlex *tview.Flex, app *tview.Application) {
	MainFlex = mainFlex
	MainFlex.SetTitle("main")
	App = app
	MainMenuFlex = tview.NewFlex().SetDirection(tview.FlexColumn)
	EditorFlex = tview.NewFlex().SetDirection(tview.FlexColumn)
	visualStack = &[]tview.Primitive{}
}

func PushVisual(p tview.Primitive) {
	*visualStack = append(*visualStack, p)
}

func PopVisual() tview.Primitive {
	if visualStack == nil || len(*visualStack) == 0 {
		return nil
	}
	p := (*visualStack)[len(*visualStack)-1]
	*visualStack = (*visualStack)[:len(*visualStack)-1]
	return p
}

func clearVisualStack() {
	visualStack = &[]tview.Primitive{}
}

// ShowPreviousVisual returns to whatever was on screen before the last dialog.
func ShowPreviousVisual() {
	p := PopVisual()
	if p != nil {
		setRoot(p)
		return
	}
	ShowMainVisual()
}

func ShowMainVisual() {
	clearVisualStack()
	if MainFlex != nil {
		setRoot(MainFlex)
		App.SetFocus(EditorFlex)
	}
}

// ShowDialog puts p on screen, remembering the current root.
func ShowDialog(current, p tview.Primitive) {
	if current != nil {
		PushVisual(current)
	}
	setRoot(p)
}

// Root returns the primitive currently on screen.
func Root() tview.Primitive {
	return root
}

func setRoot(p tview.Primitive) {
	root = p
	App.SetRoot(p, true)
	App.SetFocus(p)
}
