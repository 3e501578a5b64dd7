package uifunc

import (
	"textscrub/statefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Browser is a read-only table with a fixed header row.
type Browser struct {
	Title     string
	Columns   []string
	TableView *tview.Table
	rows      int
}

func NewBrowser(title string, columns []string) *Browser {
	b := &Browser{Title: title, Columns: columns}
	b.TableView = tview.NewTable().SetBorders(true).SetSelectable(true, false).SetFixed(1, 0)
	b.TableView.SetBorder(true).SetTitle(" " + title + " ")
	for i, col := range columns {
		b.TableView.SetCell(0, i, tview.NewTableCell(tview.Escape(col)).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold).
			SetExpansion(1))
	}
	return b
}

// SetRows replaces the table body. Short rows leave the remaining cells empty.
func (b *Browser) SetRows(rows [][]string) {
	for r := b.TableView.GetRowCount() - 1; r > 0; r-- {
		b.TableView.RemoveRow(r)
	}
	for i, row := range rows {
		for j := range b.Columns {
			s := ""
			if j < len(row) {
				s = row[j]
			}
			b.TableView.SetCell(i+1, j, tview.NewTableCell(tview.Escape(s)).SetSelectable(true).SetExpansion(1))
		}
	}
	b.rows = len(rows)
	if b.rows > 0 {
		b.TableView.Select(1, 0)
	}
}

// RowCount returns the number of body rows.
func (b *Browser) RowCount() int {
	return b.rows
}

// Cell returns the text of a body cell, row and column counted from 0.
func (b *Browser) Cell(row, col int) string {
	cell := b.TableView.GetCell(row+1, col)
	if cell == nil {
		return ""
	}
	return cell.Text
}

// Show puts the browser on screen. Escape or Enter closes it.
func (b *Browser) Show() {
	b.TableView.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			statefunc.ShowPreviousVisual()
		}
	})
	b.TableView.SetSelectedFunc(func(row, column int) {
		statefunc.ShowPreviousVisual()
	})
	statefunc.ShowDialog(statefunc.Root(), b.TableView)
}
