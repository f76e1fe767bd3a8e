package projections

import (
	"context"
	"strings"

	"boxoffice/internal/domain/play"
)

// PlaySearcher defines the store lookup needed by SearchPlays.
type PlaySearcher interface {
	Search(ctx context.Context, keyword, genre string) ([]play.Play, error)
}

// SearchPlaysQuery carries query parameters. Both filters are optional;
// a non-empty keyword substring-matches play titles.
type SearchPlaysQuery struct {
	Keyword string
	Genre   string
}

// SearchPlaysResult carries the query result. Performed is false when
// no filter was given at all, which the page renders as its initial
// "nothing searched yet" state rather than an empty result list.
type SearchPlaysResult struct {
	Performed bool
	Plays     []play.Play
}

// SearchPlaysDeps holds dependencies for SearchPlays.
type SearchPlaysDeps struct {
	PlayStore PlaySearcher
}

// QuerySearchPlays retrieves plays matching the given filters.
// PRE: none; empty filters are a valid query
// POST: Performed is true iff at least one filter was non-blank; the
// store is not consulted otherwise
func QuerySearchPlays(ctx context.Context, query SearchPlaysQuery, deps SearchPlaysDeps) (SearchPlaysResult, error) {
	keyword := strings.TrimSpace(query.Keyword)
	genre := strings.TrimSpace(query.Genre)
	if keyword == "" && genre == "" {
		return SearchPlaysResult{}, nil
	}

	plays, err := deps.PlayStore.Search(ctx, keyword, genre)
	if err != nil {
		return SearchPlaysResult{}, err
	}
	return SearchPlaysResult{Performed: true, Plays: plays}, nil
}
