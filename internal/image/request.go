package image

import "github.com/dmorgan81/artbot/internal/prompt"

const (
	DefaultModelID = "amazon.titan-image-generator-v1"

	TaskTextToImage = "TEXT_IMAGE"

	ImageCount    = 1
	GuidanceScale = 9.0
	Width         = 512
	Height        = 512
	Seed          = 123
)

type Quality string

const (
	QualityStandard Quality = "standard"
	QualityPremium  Quality = "premium"
)

type TextToImageParams struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	NumberOfImages int     `json:"numberOfImages"`
	Quality        Quality `json:"quality"`
	CfgScale       float64 `json:"cfgScale"`
	Height         int     `json:"height"`
	Width          int     `json:"width"`
	Seed           int64   `json:"seed"`
}

// Request is the Titan text-to-image payload.
type Request struct {
	TaskType          string            `json:"taskType"`
	TextToImageParams TextToImageParams `json:"textToImageParams"`
	Config            GenerationConfig  `json:"imageGenerationConfig"`
}

func (r Request) EffectivePrompt() string {
	return r.TextToImageParams.Text
}

// BuildRequest never fails. Prompt limits are enforced by the model endpoint.
func BuildRequest(text, style string) Request {
	return Request{
		TaskType:          TaskTextToImage,
		TextToImageParams: TextToImageParams{Text: prompt.Compose(style, text)},
		Config: GenerationConfig{
			NumberOfImages: ImageCount,
			Quality:        QualityStandard,
			CfgScale:       GuidanceScale,
			Height:         Height,
			Width:          Width,
			Seed:           Seed,
		},
	}
}
