package projections

import (
	"context"
	"strings"
	"testing"

	"boxoffice/internal/domain/play"
)

type fakePlaySearcher struct {
	plays  []play.Play
	called bool
}

// Search filters like the SQL store: ANDed substring matches, keyword
// against the title only.
func (f *fakePlaySearcher) Search(_ context.Context, keyword, genre string) ([]play.Play, error) {
	f.called = true
	var out []play.Play
	for _, p := range f.plays {
		if keyword != "" && !strings.Contains(p.Title, keyword) {
			continue
		}
		if genre != "" && !strings.Contains(p.Genre, genre) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func searchFixture() *fakePlaySearcher {
	return &fakePlaySearcher{plays: []play.Play{
		{ID: 1, Title: "The Seagull", Description: "A comedy in four acts.", Genre: "Drama", Duration: 150},
		{ID: 2, Title: "Macbeth", Description: "The Scottish play.", Genre: "Tragedy", Duration: 130},
	}}
}

func TestQuerySearchPlays(t *testing.T) {
	tests := []struct {
		name    string
		query   SearchPlaysQuery
		wantIDs []int64
	}{
		{"by keyword in title", SearchPlaysQuery{Keyword: "Seagull"}, []int64{1}},
		{"keyword ignores descriptions", SearchPlaysQuery{Keyword: "Scottish"}, nil},
		{"by genre", SearchPlaysQuery{Genre: "Tragedy"}, []int64{2}},
		{"keyword and genre must both match", SearchPlaysQuery{Keyword: "Seagull", Genre: "Tragedy"}, nil},
		{"no match", SearchPlaysQuery{Keyword: "Hamlet"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := QuerySearchPlays(context.Background(), tt.query, SearchPlaysDeps{PlayStore: searchFixture()})
			if err != nil {
				t.Fatalf("QuerySearchPlays failed: %v", err)
			}
			if !result.Performed {
				t.Error("Performed = false for a filtered query")
			}
			if len(result.Plays) != len(tt.wantIDs) {
				t.Fatalf("got %d plays, want %d", len(result.Plays), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if result.Plays[i].ID != id {
					t.Errorf("plays[%d].ID = %d, want %d", i, result.Plays[i].ID, id)
				}
			}
		})
	}
}

// TestQuerySearchPlays_NoFilters verifies the "nothing searched yet"
// state: blank filters skip the store entirely.
func TestQuerySearchPlays_NoFilters(t *testing.T) {
	for _, q := range []SearchPlaysQuery{{}, {Keyword: "   ", Genre: " "}} {
		store := searchFixture()
		result, err := QuerySearchPlays(context.Background(), q, SearchPlaysDeps{PlayStore: store})
		if err != nil {
			t.Fatalf("QuerySearchPlays failed: %v", err)
		}
		if result.Performed {
			t.Error("Performed = true without filters")
		}
		if store.called {
			t.Error("store must not be consulted without filters")
		}
	}
}
