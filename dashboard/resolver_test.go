package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveActiveProfile(t *testing.T) {
	tests := []struct {
		name     string
		cached   string
		selected string
		wantID   string
		wantOK   bool
	}{
		{name: "cache wins over selection", cached: "p1", selected: "p2", wantID: "p1", wantOK: true},
		{name: "cache only", cached: "p1", wantID: "p1", wantOK: true},
		{name: "selection fallback", selected: "p2", wantID: "p2", wantOK: true},
		{name: "nothing", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolveActiveProfile(tt.cached, tt.selected)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolveProfile_CachePrecedence(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.cache.Set(ProfileKey, "p1"))
	f.sink.SelectProfile("p2")

	id, err := f.coord.ResolveProfile()
	require.NoError(t, err)
	assert.Equal(t, "p1", id)
	assert.Empty(t, f.notes.all())
}

func TestResolveProfile_SelectionFallback(t *testing.T) {
	f := newFixture(t)
	f.sink.SelectProfile("p2")

	id, err := f.coord.ResolveProfile()
	require.NoError(t, err)
	assert.Equal(t, "p2", id)
}

func TestResolveProfile_NotFoundNotifiesOnce(t *testing.T) {
	f := newFixture(t)

	id, err := f.coord.ResolveProfile()
	require.ErrorIs(t, err, ErrNoActiveProfile)
	assert.Empty(t, id)

	notes := f.notes.all()
	require.Len(t, notes, 1)
	assert.Equal(t, SeverityError, notes[0].Severity)
	assert.Equal(t, "No active profile. Please create or select a profile.", notes[0].Message)
	assert.Empty(t, f.srv.Requests())
}

func TestResolveProfile_CacheReadErrorFallsBackToSelection(t *testing.T) {
	f := newFixtureWithCache(t, brokenCache{})
	f.sink.SelectProfile("p2")

	id, err := f.coord.ResolveProfile()
	require.NoError(t, err)
	assert.Equal(t, "p2", id)
	assert.Empty(t, f.notes.all())
}
