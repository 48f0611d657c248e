package inject

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/dmorgan81/artbot/internal/handler"
	"github.com/dmorgan81/artbot/internal/image"
	"github.com/dmorgan81/artbot/internal/log"
	"github.com/dmorgan81/artbot/internal/page"
	"github.com/dmorgan81/artbot/internal/param"
	"github.com/dmorgan81/artbot/internal/prompt"
	"github.com/samber/do"
)

func Setup(ctx context.Context) *do.Injector {
	injector := newInjector(ctx)
	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return config.LoadDefaultConfig(ctx)
	})
	do.Provide[*ssm.Client](injector, func(i *do.Injector) (*ssm.Client, error) {
		return ssm.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*bedrockruntime.Client](injector, func(i *do.Injector) (*bedrockruntime.Client, error) {
		return bedrockruntime.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[param.Fetcher](injector, param.NewParameterStoreFetcher)
	do.Provide[image.Transport](injector, image.NewBedrockTransport)

	provideSettings(ctx, injector, os.Getenv)
	provideComponents(injector)
	return injector
}

func newInjector(ctx context.Context) *do.Injector {
	log := log.FromContextOrDiscard(ctx)
	return do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		},
	})
}

// provideSettings resolves configuration. Plain environment values win over
// their Parameter Store counterparts.
func provideSettings(ctx context.Context, injector *do.Injector, getenv func(string) string) {
	do.ProvideNamed[string](injector, "model_id", func(i *do.Injector) (string, error) {
		if id := getenv("MODEL_ID"); id != "" {
			return id, nil
		}
		if path := getenv("MODEL_ID_PARAM"); path != "" {
			return do.MustInvoke[param.Fetcher](i).Fetch(ctx, path)
		}
		return image.DefaultModelID, nil
	})
	do.ProvideNamed[[]string](injector, "styles", func(i *do.Injector) ([]string, error) {
		if path := getenv("STYLES_PARAM"); path != "" {
			return do.MustInvoke[param.Fetcher](i).FetchAll(ctx, path)
		}
		return prompt.DefaultStyles, nil
	})
}

func provideComponents(injector *do.Injector) {
	do.Provide[image.Generator](injector, image.NewTitanGenerator)
	do.Provide[*prompt.Catalog](injector, prompt.NewCatalog)
	do.Provide[*page.Templator](injector, page.NewTemplator)
	do.Provide[*handler.Handler](injector, handler.NewHandler)
}
