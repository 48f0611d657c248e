package param

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSSM struct {
	values map[string]string
	pages  [][]types.Parameter
	err    error

	calls int
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[aws.ToString(in.Name)]
	if !ok {
		return nil, &types.ParameterNotFound{Message: in.Name}
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Name: in.Name, Value: aws.String(v)}}, nil
}

func (f *fakeSSM) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.calls
	f.calls++
	out := &ssm.GetParametersByPathOutput{Parameters: f.pages[page]}
	if page+1 < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func param(name, value string) types.Parameter {
	return types.Parameter{Name: aws.String(name), Value: aws.String(value)}
}

func TestFetch(t *testing.T) {
	f := &ParameterStoreFetcher{client: &fakeSSM{values: map[string]string{"/artbot/model": "amazon.titan-image-generator-v2:0"}}}

	v, err := f.Fetch(context.Background(), "/artbot/model")
	require.NoError(t, err)
	assert.Equal(t, "amazon.titan-image-generator-v2:0", v)

	_, err = f.Fetch(context.Background(), "/artbot/missing")
	var nf *types.ParameterNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestFetchAllOrdersAcrossPages(t *testing.T) {
	client := &fakeSSM{pages: [][]types.Parameter{
		{param("/artbot/styles/03", "Fantasy"), param("/artbot/styles/01", "Abstract")},
		{param("/artbot/styles/02", "Cute")},
	}}
	f := &ParameterStoreFetcher{client: client}

	v, err := f.FetchAll(context.Background(), "/artbot/styles")
	require.NoError(t, err)
	assert.Equal(t, []string{"Abstract", "Cute", "Fantasy"}, v)
	assert.Equal(t, 2, client.calls)
}

func TestFetchAllError(t *testing.T) {
	boom := errors.New("access denied")
	f := &ParameterStoreFetcher{client: &fakeSSM{err: boom}}

	_, err := f.FetchAll(context.Background(), "/artbot/styles")
	assert.ErrorIs(t, err, boom)
}
