package pagesfunc

import (
	"fmt"

	"textscrub/editorfunc"
	"textscrub/helpsysfunc"
	"textscrub/i18nfunc"
	"textscrub/inputfunc"
	"textscrub/statefunc"
	"textscrub/themefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MainMenu represents the main menu bar for the editor.
type MainMenu struct {
	*tview.Flex
	menuBar   *tview.TextView
	findInput *tview.InputField
	findFlex  *tview.Flex
	findTerm  string
	menus     []string
	selected  int
	callbacks []func()
	palette   themefunc.Palette
}

// newMainMenu creates a new main menu bar with the given menu items and callbacks.
func newMainMenu(menus []string, callbacks []func()) *MainMenu {
	menuBar := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(false).
		SetWrap(false)
	m := &MainMenu{
		Flex:      statefunc.MainMenuFlex,
		menuBar:   menuBar,
		menus:     menus,
		selected:  0,
		callbacks: callbacks,
		palette:   themefunc.PaletteFor(themefunc.Standard),
	}
	m.updateMenuBar()
	m.findFlex = tview.NewFlex().SetDirection(tview.FlexColumn)
	m.menuBar.SetInputCapture(m.inputHandler)
	m.AddItem(menuBar, 0, 2, true)
	m.AddItem(m.findFlex, 0, 3, false)
	return m
}

func (m *MainMenu) setPalette(p themefunc.Palette) {
	m.palette = p
	m.menuBar.SetBackgroundColor(p.MenuBg)
	m.findFlex.SetBackgroundColor(p.MenuBg)
	if m.findInput != nil {
		m.findInput.SetFieldBackgroundColor(p.Background)
		m.findInput.SetFieldTextColor(p.Foreground)
	}
	m.updateMenuBar()
}

// updateMenuBar updates the visual representation of the menu bar.
func (m *MainMenu) updateMenuBar() {
	m.menuBar.Clear()
	focused := m.menuBar.HasFocus()
	for i, menu := range m.menus {
		if i > 0 {
			fmt.Fprint(m.menuBar, "  ")
		}
		if focused && i == m.selected {
			fmt.Fprintf(m.menuBar, "[%s:%s]%s[-:-]",
				themefunc.Tag(m.palette.MenuBg), themefunc.Tag(m.palette.MenuFg), tview.Escape(menu))
		} else {
			fmt.Fprintf(m.menuBar, "[%s]%s[-]", themefunc.Tag(m.palette.MenuFg), tview.Escape(menu))
		}
	}
}

// inputHandler handles keyboard navigation for the menu bar.
func (m *MainMenu) inputHandler(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		if m.selected > 0 {
			m.selected--
			m.updateMenuBar()
		}
		return nil
	case tcell.KeyRight:
		if m.selected < len(m.menus)-1 {
			m.selected++
			m.updateMenuBar()
		}
		return nil
	case tcell.KeyEnter, tcell.KeyDown:
		if m.selected >= 0 && m.selected < len(m.callbacks) && m.callbacks[m.selected] != nil {
			m.callbacks[m.selected]()
		}
		return nil
	case tcell.KeyEscape:
		m.focusEditor()
		return nil
	}
	return event
}

func (m *MainMenu) focusEditor() {
	statefunc.App.SetFocus(statefunc.EditorFlex)
	m.updateMenuBar()
}

func (m *MainMenu) toggleFocus() {
	if m.menuBar.HasFocus() {
		m.focusEditor()
		return
	}
	statefunc.App.SetFocus(m.menuBar)
	m.updateMenuBar()
}

// openFindBar shows the find input next to the menu and focuses it.
func (m *MainMenu) openFindBar() {
	if m.findInput == nil {
		m.findInput = tview.NewInputField().
			SetLabel(i18nfunc.T("find.label", nil)).
			SetText(m.findTerm).
			SetFieldBackgroundColor(m.palette.Background).
			SetFieldTextColor(m.palette.Foreground)
		m.findInput.SetLabelColor(m.palette.MenuFg)
		m.findInput.SetBackgroundColor(m.palette.MenuBg)
		inputfunc.SetChoiceInput(m.findInput, pairKeys)
		m.findInput.SetDoneFunc(func(key tcell.Key) {
			switch key {
			case tcell.KeyEnter:
				m.findAll()
			case tcell.KeyEscape:
				m.closeFindBar()
			}
		})
		findAll := tview.NewButton(i18nfunc.T("find.all", nil)).SetSelectedFunc(m.findAll)
		next := tview.NewButton(i18nfunc.T("find.next", nil)).SetSelectedFunc(m.findNext)
		closeBtn := tview.NewButton(i18nfunc.T("find.close", nil)).SetSelectedFunc(m.closeFindBar)
		m.findFlex.AddItem(m.findInput, 0, 1, true).
			AddItem(findAll, len(i18nfunc.T("find.all", nil))+2, 0, false).
			AddItem(next, len(i18nfunc.T("find.next", nil))+2, 0, false).
			AddItem(closeBtn, len(i18nfunc.T("find.close", nil))+2, 0, false)
	}
	statefunc.App.SetFocus(m.findInput)
}

func (m *MainMenu) closeFindBar() {
	if m.findInput != nil {
		m.findTerm = m.findInput.GetText()
	}
	m.findFlex.Clear()
	m.findInput = nil
	Editor.ClearHighlights()
	m.focusEditor()
}

func (m *MainMenu) term() string {
	if m.findInput != nil {
		m.findTerm = m.findInput.GetText()
	}
	return m.findTerm
}

func (m *MainMenu) findAll() {
	Editor.FindAll(m.term())
	m.focusEditor()
}

func (m *MainMenu) findNext() {
	term := m.term()
	if term == "" {
		m.openFindBar()
		return
	}
	Editor.FindNext(term)
	m.focusEditor()
}

// AddMainMenuToEditor adds the main menu to the top of the editor layout.
func AddMainMenuToEditor(editor *editorfunc.TextEditor, statusBar tview.Primitive) tview.Primitive {
	menus := []string{
		i18nfunc.T("menu.file", nil),
		i18nfunc.T("menu.edit", nil),
		i18nfunc.T("menu.search", nil),
		i18nfunc.T("menu.theme", nil),
		i18nfunc.T("menu.help", nil),
	}
	callbacks := []func(){
		func() { showDropdown("menu.file", fileMenu) },
		func() { showDropdown("menu.edit", editMenu) },
		func() { showDropdown("menu.search", searchMenu) },
		showThemeMenu,
		func() { showDropdown("menu.help", helpMenu) },
	}
	mainMenu = newMainMenu(menus, callbacks)
	statefunc.EditorFlex.AddItem(editor, 0, 1, true)
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(mainMenu, 1, 0, false).
		AddItem(statefunc.EditorFlex, 0, 1, true)
	if statusBar != nil {
		flex.AddItem(statusBar, 1, 0, false)
	}
	flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		action, ok := helpsysfunc.Lookup(event.Key())
		if !ok {
			return event
		}
		runAction(action)
		return nil
	})
	return flex
}

type menuItem struct {
	action   helpsysfunc.Action
	shortcut rune
}

var fileMenu = []menuItem{
	{helpsysfunc.ActionNew, 'n'},
	{helpsysfunc.ActionOpen, 'o'},
	{helpsysfunc.ActionSave, 's'},
	{helpsysfunc.ActionSaveAs, 'a'},
	{helpsysfunc.ActionExit, 'x'},
}

var editMenu = []menuItem{
	{helpsysfunc.ActionUndo, 'u'},
	{helpsysfunc.ActionRedo, 'r'},
	{helpsysfunc.ActionCut, 't'},
	{helpsysfunc.ActionCopy, 'c'},
	{helpsysfunc.ActionPaste, 'p'},
	{helpsysfunc.ActionSelectAll, 'a'},
	{helpsysfunc.ActionReplaceBulk, 'b'},
	{helpsysfunc.ActionReverse, 'v'},
}

var searchMenu = []menuItem{
	{helpsysfunc.ActionFind, 'f'},
	{helpsysfunc.ActionFindNext, 'n'},
	{helpsysfunc.ActionBulkDialog, 'b'},
	{helpsysfunc.ActionHistory, 'h'},
}

var helpMenu = []menuItem{
	{helpsysfunc.ActionHelp, 'h'},
}

// showDropdown shows a menu as a list; Escape goes back to the editor.
func showDropdown(titleID string, items []menuItem) {
	flex := tview.NewFlex().SetDirection(tview.FlexRow)
	list := tview.NewList()
	for _, it := range items {
		action := it.action
		list.AddItem(helpsysfunc.Describe(action), "", it.shortcut, func() {
			statefunc.ShowMainVisual()
			runAction(action)
		})
	}
	list.SetBorder(true).SetTitle(i18nfunc.T(titleID, nil))
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			statefunc.ShowMainVisual()
			return nil
		}
		return event
	})
	flex.AddItem(list, 0, 1, true)
	statefunc.ShowDialog(statefunc.MainFlex, flex)
}

func showThemeMenu() {
	flex := tview.NewFlex().SetDirection(tview.FlexRow)
	list := tview.NewList()
	for i, t := range themefunc.Themes() {
		theme := t
		name := i18nfunc.T("theme."+theme.String(), nil)
		if theme == State.Theme() {
			name = "* " + name
		}
		list.AddItem(name, "", rune('1'+i), func() {
			ApplyTheme(theme)
			statefunc.ShowMainVisual()
			Editor.SetStatus(i18nfunc.T("status.theme", map[string]interface{}{
				"Theme": i18nfunc.T("theme."+theme.String(), nil),
			}))
		})
	}
	list.SetBorder(true).SetTitle(i18nfunc.T("menu.theme", nil))
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			statefunc.ShowMainVisual()
			return nil
		}
		return event
	})
	flex.AddItem(list, 0, 1, true)
	statefunc.ShowDialog(statefunc.MainFlex, flex)
}

// pairKeys offers the stored replace keys as find suggestions.
func pairKeys() []string {
	if State == nil {
		return nil
	}
	pairs := State.Pairs()
	keys := make([]string, 0, pairs.Len())
	for i := 0; i < pairs.Len(); i++ {
		keys = append(keys, pairs.At(i).Key)
	}
	return keys
}
