package prompt

import (
	"context"
	"testing"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		style, text, want string
	}{
		{"Fantasy", "a castle on a hill", "Fantasy a castle on a hill"},
		{"Science Fiction", "a ship", "Science Fiction a ship"},
		{"Cute", "", "Cute "},
		{"", "", " "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compose(tt.style, tt.text))
	}
}

func TestCatalog(t *testing.T) {
	c, err := NewCatalogOf(DefaultStyles)
	require.NoError(t, err)

	assert.Equal(t, "Abstract", c.Default())
	assert.Equal(t, DefaultStyles, c.Styles())

	style, ok := c.Lookup(context.Background(), "Surreal")
	assert.True(t, ok)
	assert.Equal(t, "Surreal", style)

	_, ok = c.Lookup(context.Background(), "surreal")
	assert.False(t, ok)
}

func TestCatalogCleansInput(t *testing.T) {
	c, err := NewCatalogOf([]string{" Noir ", "", "Noir", "Pop Art"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Noir", "Pop Art"}, c.Styles())

	_, err = NewCatalogOf([]string{" ", ""})
	assert.Error(t, err)
}

func TestCatalogStylesIsCopy(t *testing.T) {
	c, err := NewCatalogOf([]string{"A", "B"})
	require.NoError(t, err)
	styles := c.Styles()
	styles[0] = "Z"
	assert.Equal(t, "A", c.Default())
}

func TestNewCatalogFromInjector(t *testing.T) {
	i := do.New()
	do.ProvideNamedValue[[]string](i, "styles", []string{"Techno"})
	do.Provide[*Catalog](i, NewCatalog)

	c, err := do.Invoke[*Catalog](i)
	require.NoError(t, err)
	assert.Equal(t, []string{"Techno"}, c.Styles())
}
