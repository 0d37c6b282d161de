package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Matches(t *testing.T) {
	entry := &Entry{Type: "show_published", Subject: "Heat", RecordedAtMs: 1000}

	tests := []struct {
		name     string
		filter   Filter
		expected bool
	}{
		{name: "empty filter", filter: Filter{}, expected: true},
		{name: "since before", filter: Filter{SinceMs: 500}, expected: true},
		{name: "since after", filter: Filter{SinceMs: 1500}, expected: false},
		{name: "until after", filter: Filter{UntilMs: 1500}, expected: true},
		{name: "until before", filter: Filter{UntilMs: 999}, expected: false},
		{name: "type glob", filter: Filter{TypeGlob: "show_*"}, expected: true},
		{name: "type glob miss", filter: Filter{TypeGlob: "user_*"}, expected: false},
		{name: "malformed glob", filter: Filter{TypeGlob: "[show"}, expected: false},
		{name: "subject", filter: Filter{Subject: "Heat"}, expected: true},
		{name: "subject miss", filter: Filter{Subject: "Ronin"}, expected: false},
		{name: "all criteria", filter: Filter{SinceMs: 1, UntilMs: 2000, TypeGlob: "*_published", Subject: "Heat"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(entry))
		})
	}
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestClient(t)

	ms := int64(1000)
	client.now = func() time.Time {
		ms += 1000
		return time.UnixMilli(ms)
	}

	for _, ev := range []struct{ typ, subject string }{
		{"user_registered", "root"},
		{"artist_created", "Ann"},
		{"show_published", "Heat"},
		{"artist_created", "Ben"},
		{"show_published", "Ronin"},
	} {
		_, err := client.Append(ctx, ev.typ, ev.subject, nil)
		require.NoError(t, err)
	}

	subjects := func(entries []*Entry) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.Subject)
		}
		return out
	}

	t.Run("no filter behaves like list", func(t *testing.T) {
		entries, err := client.Query(ctx, nil, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ben", "Ronin"}, subjects(entries))
	})

	t.Run("type glob", func(t *testing.T) {
		entries, err := client.Query(ctx, &Filter{TypeGlob: "artist_*"}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ann", "Ben"}, subjects(entries))
	})

	t.Run("limit applies after filtering", func(t *testing.T) {
		entries, err := client.Query(ctx, &Filter{TypeGlob: "show_*"}, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ronin"}, subjects(entries))
	})

	t.Run("time window", func(t *testing.T) {
		entries, err := client.Query(ctx, &Filter{SinceMs: 3000, UntilMs: 4000}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ann", "Heat"}, subjects(entries))
	})

	t.Run("invalid glob", func(t *testing.T) {
		_, err := client.Query(ctx, &Filter{TypeGlob: "[show"}, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid type pattern")
	})
}

func TestParseTime(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	t.Run("RFC3339", func(t *testing.T) {
		ms, err := ParseTime("2026-10-15T11:00:00Z", now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(-time.Hour).UnixMilli(), ms)
	})

	t.Run("duration counts back from now", func(t *testing.T) {
		ms, err := ParseTime("1h30m", now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(-90*time.Minute).UnixMilli(), ms)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseTime("", now)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseTime("yesterday", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid time specification")
	})
}

func TestParseRange(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	t.Run("open range", func(t *testing.T) {
		since, until, err := ParseRange("", "", now)
		require.NoError(t, err)
		assert.Zero(t, since)
		assert.Zero(t, until)
	})

	t.Run("valid range", func(t *testing.T) {
		since, until, err := ParseRange("2h", "1h", now)
		require.NoError(t, err)
		assert.Less(t, since, until)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, _, err := ParseRange("1h", "2h", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--since must be before --until")
	})

	t.Run("bad until", func(t *testing.T) {
		_, _, err := ParseRange("", "soon", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --until")
	})
}
