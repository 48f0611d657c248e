package image

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"
	"github.com/samber/do"
)

const contentTypeJSON = "application/json"

// ModelInvoker is the slice of *bedrockruntime.Client the transport needs.
type ModelInvoker interface {
	InvokeModel(context.Context, *bedrockruntime.InvokeModelInput, ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type BedrockTransport struct {
	Client ModelInvoker
}

func NewBedrockTransport(i *do.Injector) (Transport, error) {
	return &BedrockTransport{Client: do.MustInvoke[*bedrockruntime.Client](i)}, nil
}

// InvokeModel maps SDK failures onto the transport contract: validation
// exceptions become ErrValidation, other HTTP-level API errors become a non-OK
// Response, and anything else is returned as is.
func (t *BedrockTransport) InvokeModel(ctx context.Context, payload []byte, modelID string) (*Response, error) {
	out, err := t.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        payload,
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
	})
	if err != nil {
		var ve *types.ValidationException
		if errors.As(err, &ve) {
			return nil, fmt.Errorf("%w: %s", ErrValidation, ve.ErrorMessage())
		}

		var re *awshttp.ResponseError
		if errors.As(err, &re) {
			msg := re.Error()
			var apiErr smithy.APIError
			if errors.As(err, &apiErr) {
				msg = apiErr.ErrorMessage()
			}
			body, merr := json.Marshal(map[string]string{"message": msg})
			if merr != nil {
				return nil, merr
			}
			return &Response{
				StatusCode: re.HTTPStatusCode(),
				Body:       io.NopCloser(bytes.NewReader(body)),
			}, nil
		}
		return nil, err
	}

	return &Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader(out.Body)),
	}, nil
}
