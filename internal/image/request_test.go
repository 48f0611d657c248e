package image

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestEffectivePrompt(t *testing.T) {
	tests := []struct {
		name, text, style string
	}{
		{"castle", "a castle on a hill", "Fantasy"},
		{"empty prompt", "", "Cute"},
		{"empty both", "", ""},
		{"multi word style", "neon city", "Science Fiction"},
		{"unicode", "猫が空を飛ぶ", "Surreal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := BuildRequest(tt.text, tt.style)
			assert.Equal(t, tt.style+" "+tt.text, req.EffectivePrompt())
		})
	}
}

func TestBuildRequestFixedConfig(t *testing.T) {
	req := BuildRequest("a castle on a hill", "Fantasy")
	assert.Equal(t, TaskTextToImage, req.TaskType)
	assert.Equal(t, GenerationConfig{
		NumberOfImages: 1,
		Quality:        QualityStandard,
		CfgScale:       9.0,
		Height:         512,
		Width:          512,
		Seed:           123,
	}, req.Config)
}

func TestRequestWireFormat(t *testing.T) {
	data, err := json.Marshal(BuildRequest("a castle on a hill", "Fantasy"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"taskType": "TEXT_IMAGE",
		"textToImageParams": {"text": "Fantasy a castle on a hill"},
		"imageGenerationConfig": {
			"numberOfImages": 1,
			"quality": "standard",
			"cfgScale": 9.0,
			"height": 512,
			"width": 512,
			"seed": 123
		}
	}`, string(data))
}
