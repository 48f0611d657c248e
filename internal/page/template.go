package page

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/base64"
	"html/template"
	"sync"

	"github.com/dmorgan81/artbot/internal/log"
	"github.com/samber/do"
)

//go:embed assets/index.html
var indexTmpl string

type Params struct {
	Styles   []string
	Selected string
	Prompt   string
	Image    []byte
	Error    string
}

type view struct {
	Params
	ImageURL template.URL
}

type Templator struct {
	tmpl *template.Template
	once sync.Once
}

func NewTemplator(_ *do.Injector) (*Templator, error) {
	return &Templator{}, nil
}

func (g *Templator) Template(ctx context.Context, params Params) ([]byte, error) {
	g.once.Do(func() {
		g.tmpl = template.Must(template.New("index").Parse(indexTmpl))
	})

	log := log.FromContextOrDiscard(ctx).WithGroup("templator")
	log.Info("generating page", "image", len(params.Image) > 0, "error", params.Error != "")

	v := view{Params: params}
	if len(params.Image) > 0 {
		// Titan returns PNG.
		v.ImageURL = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(params.Image))
	}

	var data bytes.Buffer
	if err := g.tmpl.Execute(&data, v); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}
