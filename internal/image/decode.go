package image

import (
	"encoding/base64"
	"encoding/json"
	"io"
)

// DecodeImage reads the whole body and returns the first base64 entry of its
// "images" list. Any further entries are ignored.
func DecodeImage(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, newError(DecodeFailure, err, "reading response body")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, newError(DecodeFailure, err, "parsing response body")
	}

	raw, ok := doc["images"]
	if !ok {
		return nil, newError(DecodeFailure, nil, "response has no images field")
	}

	var images []json.RawMessage
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil, newError(DecodeFailure, err, "images field is not a list")
	}
	if len(images) == 0 {
		return nil, newError(DecodeFailure, nil, "response contains no images")
	}

	var encoded string
	if err := json.Unmarshal(images[0], &encoded); err != nil {
		return nil, newError(DecodeFailure, err, "first image is not a string")
	}

	img, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, newError(DecodeFailure, err, "decoding base64 image")
	}
	return img, nil
}
