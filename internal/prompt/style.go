package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/dmorgan81/artbot/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
)

// DefaultStyles is the art style catalogue offered when no override is configured.
var DefaultStyles = []string{
	"Abstract",
	"Cute",
	"Fantasy",
	"Futuristic",
	"Realistic",
	"Science Fiction",
	"Surreal",
	"Techno",
}

// Compose prepends the style label to the user's text.
func Compose(style, text string) string {
	return style + " " + text
}

type Catalog struct {
	styles []string
}

func NewCatalog(i *do.Injector) (*Catalog, error) {
	styles := do.MustInvokeNamed[[]string](i, "styles")
	return NewCatalogOf(styles)
}

func NewCatalogOf(styles []string) (*Catalog, error) {
	styles = lo.Uniq(lo.Filter(lo.Map(styles, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), func(s string, _ int) bool {
		return s != ""
	}))
	if len(styles) == 0 {
		return nil, errors.New("style catalogue is empty")
	}
	return &Catalog{styles}, nil
}

func (c *Catalog) Styles() []string {
	return append([]string(nil), c.styles...)
}

// Default is the style preselected in the form.
func (c *Catalog) Default() string {
	return c.styles[0]
}

func (c *Catalog) Lookup(ctx context.Context, style string) (string, bool) {
	log := log.FromContextOrDiscard(ctx).WithGroup("catalog").With("style", style)
	found, ok := lo.Find(c.styles, func(s string) bool {
		return s == style
	})
	if !ok {
		log.Warn("unknown style")
	}
	return found, ok
}
