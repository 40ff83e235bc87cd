package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(t *testing.T) *Searcher {
	repo, err := NewMemoryRepository(SeedProducts())
	require.NoError(t, err)
	return NewSearcher(repo, 0)
}

func TestSearch_EmptyQueryReturnsNothing(t *testing.T) {
	s := newTestSearcher(t)

	results, err := s.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = s.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_MatchesAcrossFields(t *testing.T) {
	s := newTestSearcher(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		wantName string
	}{
		{"by name", "quantum", "Quantum Neural Headset"},
		{"by category", "drones", "Photon Camera Drone"},
		{"by description", "noise cancellation", "Echo Wireless Earbuds"},
		{"by tag", "holographic", "HoloLens Display Glasses"},
		{"case insensitive", "QUANTUM", "Quantum Neural Headset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := s.Search(ctx, tt.query)
			require.NoError(t, err)
			require.NotEmpty(t, results)
			assert.Equal(t, tt.wantName, results[0].Name)
		})
	}
}

func TestSearch_NoMatch(t *testing.T) {
	s := newTestSearcher(t)

	results, err := s.Search(context.Background(), "typewriter")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSuggestions_KeywordMatch(t *testing.T) {
	s := newTestSearcher(t)

	suggestions, err := s.Suggestions(context.Background(), "gaming mouse")
	require.NoError(t, err)
	assert.Contains(t, suggestions, "Gaming Mouse")
}

func TestSuggestions_FallbackForUnknownQuery(t *testing.T) {
	s := newTestSearcher(t)

	suggestions, err := s.Suggestions(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Equal(t, fallbackSuggestions, suggestions)
}

func TestSuggestions_EmptyQuery(t *testing.T) {
	s := newTestSearcher(t)

	suggestions, err := s.Suggestions(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSearch_DelayIsCancellable(t *testing.T) {
	repo, err := NewMemoryRepository(SeedProducts())
	require.NoError(t, err)
	s := NewSearcher(repo, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Search(ctx, "quantum")
	assert.ErrorIs(t, err, context.Canceled)
}
