package themefunc

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var ErrUnknownTheme = errors.New("unknown theme")

type Theme int

const (
	Standard Theme = iota
	Dark
	Light
)

var themeNames = map[Theme]string{
	Standard: "Standard",
	Dark:     "Dark",
	Light:    "Light",
}

func (t Theme) String() string {
	if name, ok := themeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ParseTheme accepts the exact names written to the preferences file.
func ParseTheme(name string) (Theme, error) {
	for t, n := range themeNames {
		if n == name {
			return t, nil
		}
	}
	return Standard, fmt.Errorf("%q: %w", name, ErrUnknownTheme)
}

// Themes returns all themes in menu order.
func Themes() []Theme {
	return []Theme{Standard, Dark, Light}
}

// Palette is the fixed set of colours a theme applies to the widgets.
type Palette struct {
	Background    tcell.Color
	Foreground    tcell.Color
	MenuBg        tcell.Color
	MenuFg        tcell.Color
	DialogBg      tcell.Color
	Cursor        tcell.Color
	ReplaceBg     tcell.Color
	ReplaceFg     tcell.Color
	FindBg        tcell.Color
	FindFg        tcell.Color
	SelectionBg   tcell.Color
	SelectionFg   tcell.Color
	StatusErrorFg tcell.Color
}

var palettes = map[Theme]Palette{
	Standard: {
		Background: tcell.ColorWhite,
		Foreground: tcell.ColorBlack,
		MenuBg:     tcell.ColorLightGray,
		MenuFg:     tcell.ColorBlack,
		DialogBg:   tcell.ColorWhite,
		Cursor:     tcell.ColorBlack,
	},
	Dark: {
		Background: tcell.GetColor("#002b36"),
		Foreground: tcell.GetColor("#839496"),
		MenuBg:     tcell.GetColor("#073642"),
		MenuFg:     tcell.GetColor("#839496"),
		DialogBg:   tcell.GetColor("#002b36"),
		Cursor:     tcell.ColorWhite,
	},
	Light: {
		Background: tcell.GetColor("#fdf6e3"),
		Foreground: tcell.GetColor("#657b83"),
		MenuBg:     tcell.GetColor("#eee8d5"),
		MenuFg:     tcell.GetColor("#657b83"),
		DialogBg:   tcell.GetColor("#fdf6e3"),
		Cursor:     tcell.ColorBlack,
	},
}

// PaletteFor returns the palette of t; unknown themes get Standard.
func PaletteFor(t Theme) Palette {
	p, ok := palettes[t]
	if !ok {
		p = palettes[Standard]
	}
	// highlight colours are shared by every theme
	p.ReplaceBg, p.ReplaceFg = tcell.ColorYellow, tcell.ColorBlack
	p.FindBg, p.FindFg = tcell.ColorGray, tcell.ColorBlack
	p.SelectionBg, p.SelectionFg = p.Foreground, p.Background
	p.StatusErrorFg = tcell.ColorRed
	return p
}

// Apply updates tview's global styles so widgets built afterwards use p.
func Apply(p Palette) {
	tview.Styles.PrimitiveBackgroundColor = p.DialogBg
	tview.Styles.ContrastBackgroundColor = p.MenuBg
	tview.Styles.MoreContrastBackgroundColor = p.MenuBg
	tview.Styles.BorderColor = p.Foreground
	tview.Styles.TitleColor = p.Foreground
	tview.Styles.GraphicsColor = p.Foreground
	tview.Styles.PrimaryTextColor = p.Foreground
	tview.Styles.SecondaryTextColor = p.MenuFg
	tview.Styles.TertiaryTextColor = p.MenuFg
	tview.Styles.InverseTextColor = p.Background
	tview.Styles.ContrastSecondaryTextColor = p.MenuFg
}

// Tag renders c as a tview colour tag component, e.g. "#002b36".
func Tag(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
