package image

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dmorgan81/artbot/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
)

// Response is what a Transport hands back. The caller closes Body.
type Response struct {
	StatusCode int
	Body       io.ReadCloser
}

type Transport interface {
	InvokeModel(ctx context.Context, payload []byte, modelID string) (*Response, error)
}

type Generator interface {
	Generate(ctx context.Context, text, style string) ([]byte, error)
}

type TitanGenerator struct {
	transport Transport
	modelID   string
}

func NewGenerator(transport Transport, modelID string) *TitanGenerator {
	return &TitanGenerator{
		transport: transport,
		modelID:   lo.Ternary(modelID != "", modelID, DefaultModelID),
	}
}

func NewTitanGenerator(i *do.Injector) (Generator, error) {
	return NewGenerator(
		do.MustInvoke[Transport](i),
		do.MustInvokeNamed[string](i, "model_id"),
	), nil
}

func (g *TitanGenerator) ModelID() string {
	return g.modelID
}

// Generate runs one text-to-image call. Every failure comes back as a
// *GenerationError.
func (g *TitanGenerator) Generate(ctx context.Context, text, style string) ([]byte, error) {
	req := BuildRequest(text, style)
	log := log.FromContextOrDiscard(ctx).WithGroup("generator").With(
		"model", g.modelID,
		"prompt", req.EffectivePrompt(),
	)
	log.Info("generating image")

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, newError(UnknownFailure, err, "encoding request")
	}

	resp, err := g.transport.InvokeModel(ctx, payload, g.modelID)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			log.Warn("request rejected", "error", err)
			return nil, newError(ValidationFailure, err, "invalid request parameters")
		}
		log.Error("invoking model", "error", err)
		return nil, newError(UnknownFailure, err, "invoking model")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg := diagnostic(resp.Body)
		log.Error("model returned error status", "status", resp.StatusCode, "body", msg)
		return nil, newError(ServiceFailure, nil, "model returned status %d: %s", resp.StatusCode, msg)
	}

	img, err := DecodeImage(resp.Body)
	if err != nil {
		log.Error("decoding image", "error", err)
		return nil, err
	}
	log.Info("received image", "bytes", len(img))
	return img, nil
}

// diagnostic prefers a JSON "message" field and falls back to the raw body.
func diagnostic(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil {
		return err.Error()
	}
	var doc struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &doc) == nil && doc.Message != "" {
		return doc.Message
	}
	return strings.TrimSpace(string(data))
}
