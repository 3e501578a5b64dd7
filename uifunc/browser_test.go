package uifunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowserRows(t *testing.T) {
	b := NewBrowser("History", []string{"When", "Mode", "Count"})
	assert.Equal(t, 1, b.TableView.GetRowCount())

	b.SetRows([][]string{
		{"today", "forward", "3"},
		{"yesterday", "reverse"},
	})
	assert.Equal(t, 2, b.RowCount())
	assert.Equal(t, "forward", b.Cell(0, 1))
	assert.Equal(t, "", b.Cell(1, 2))
	assert.Equal(t, 3, b.TableView.GetRowCount())

	b.SetRows([][]string{{"now", "forward", "1"}})
	assert.Equal(t, 1, b.RowCount())
	assert.Equal(t, 2, b.TableView.GetRowCount())
	assert.Equal(t, "now", b.Cell(0, 0))
}
