package inputfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	choices := []string{"Foo", "food", "bar", "Foo"}
	assert.Equal(t, []string{"Foo", "food"}, Matches("fo", choices))
	assert.Equal(t, []string{"bar"}, Matches("BA", choices))
	assert.Nil(t, Matches("", choices))
	assert.Nil(t, Matches("zz", choices))
}
