package param

import "context"

type Fetcher interface {
	Fetch(context.Context, string) (string, error)
	// FetchAll returns the values under a path ordered by parameter name.
	FetchAll(context.Context, string) ([]string, error)
}
