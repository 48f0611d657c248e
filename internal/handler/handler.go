package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	"github.com/dmorgan81/artbot/internal/image"
	"github.com/dmorgan81/artbot/internal/log"
	"github.com/dmorgan81/artbot/internal/page"
	"github.com/dmorgan81/artbot/internal/prompt"
	"github.com/samber/do"
)

type Input struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
}

func (i Input) toPageParams(styles []string) page.Params {
	return page.Params{
		Styles:   styles,
		Selected: i.Style,
		Prompt:   i.Prompt,
	}
}

type Handler struct {
	catalog   *prompt.Catalog
	generator image.Generator
	templator *page.Templator
}

func NewHandler(i *do.Injector) (*Handler, error) {
	return &Handler{
		catalog:   do.MustInvoke[*prompt.Catalog](i),
		generator: do.MustInvoke[image.Generator](i),
		templator: do.MustInvoke[*page.Templator](i),
	}, nil
}

// Handle serves the function URL. Generation failures are shown on the page;
// only a page that cannot be rendered fails the invocation.
func (h *Handler) Handle(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	ctx, _ = log.WithInvocation(ctx)
	method := req.RequestContext.HTTP.Method
	log := log.FromContextOrDiscard(ctx).WithGroup("Handler").With("method", method)
	log.Info("handling function url invocation")

	switch method {
	case http.MethodGet:
		return h.render(ctx, http.StatusOK, Input{Style: h.catalog.Default()}.toPageParams(h.catalog.Styles()))

	case http.MethodPost:
		input, err := parseInput(req)
		if err != nil {
			log.Warn("malformed form body", "error", err)
			params := Input{Style: h.catalog.Default()}.toPageParams(h.catalog.Styles())
			params.Error = "could not read the submitted form"
			return h.render(ctx, http.StatusBadRequest, params)
		}
		return h.generate(ctx, input)

	default:
		return events.LambdaFunctionURLResponse{
			StatusCode: http.StatusMethodNotAllowed,
			Headers:    map[string]string{"Allow": "GET, POST"},
		}, nil
	}
}

func (h *Handler) generate(ctx context.Context, input Input) (events.LambdaFunctionURLResponse, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("Handler").With("input", input)
	params := input.toPageParams(h.catalog.Styles())

	if _, ok := h.catalog.Lookup(ctx, input.Style); !ok {
		params.Selected = h.catalog.Default()
		params.Error = fmt.Sprintf("unknown art style %q", input.Style)
		return h.render(ctx, http.StatusBadRequest, params)
	}

	img, err := h.generator.Generate(ctx, input.Prompt, input.Style)
	if err != nil {
		log.Warn("generation failed", "kind", image.KindOf(err).String(), "error", err)
		params.Error = err.Error()
	} else {
		params.Image = img
	}
	return h.render(ctx, http.StatusOK, params)
}

func (h *Handler) render(ctx context.Context, status int, params page.Params) (events.LambdaFunctionURLResponse, error) {
	html, err := h.templator.Template(ctx, params)
	if err != nil {
		return events.LambdaFunctionURLResponse{}, err
	}
	return events.LambdaFunctionURLResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "text/html; charset=utf-8"},
		Body:       string(html),
	}, nil
}

func parseInput(req events.LambdaFunctionURLRequest) (Input, error) {
	body := req.Body
	if req.IsBase64Encoded {
		data, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return Input{}, err
		}
		body = string(data)
	}

	form, err := url.ParseQuery(body)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Prompt: form.Get("prompt"),
		Style:  form.Get("style"),
	}, nil
}
