package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dyluth/cinereviews/pkg/collab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFriends(t *testing.T) {
	t.Run("no artists", func(t *testing.T) {
		_, err := CollectFriends(collab.NewEngine())
		assert.ErrorIs(t, err, collab.ErrNoArtists)
	})

	t.Run("no collaborations", func(t *testing.T) {
		e := collab.NewEngine()
		e.EnsureArtist("Alice")
		_, err := CollectFriends(e)
		assert.ErrorIs(t, err, collab.ErrNoCollaborations)
	})

	t.Run("pairs listed once in name order", func(t *testing.T) {
		e := collab.NewEngine()
		e.PublishShow("s1", "A", []string{"B"})
		e.PublishShow("s2", "A", []string{"B", "C"})
		e.PublishShow("s3", "D", []string{"C"})
		e.PublishShow("s4", "C", []string{"D"})

		f, err := CollectFriends(e)
		require.NoError(t, err)
		assert.Equal(t, 2, f.Projects)
		assert.Equal(t, []FriendPair{
			{First: "A", Second: "B", Projects: 2},
			{First: "C", Second: "D", Projects: 2},
		}, f.Pairs)
	})
}

func TestFormatFriendsText(t *testing.T) {
	var buf bytes.Buffer
	FormatFriendsText(&buf, Friends{
		Projects: 3,
		Pairs:    []FriendPair{{First: "Ann", Second: "Ben"}, {First: "Cal", Second: "Dee"}},
	})

	assert.Equal(t, "These artists have worked on 3 projects together\nAnn and Ben\nCal and Dee\n", buf.String())
}

func TestFormatFriendsJSONL(t *testing.T) {
	var buf bytes.Buffer
	err := FormatFriendsJSONL(&buf, Friends{
		Projects: 2,
		Pairs:    []FriendPair{{First: "Ann", Second: "Ben", Projects: 2}},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"first":"Ann","second":"Ben","projects":2}`, strings.TrimSpace(buf.String()))
}

func TestFormatAvoidersText(t *testing.T) {
	var buf bytes.Buffer
	FormatAvoidersText(&buf, 3, []collab.Group{
		{"Alice", "Bob", "Carol"},
		{"Alice", "Bob", "Dave"},
	})

	expected := "These 3 artists never worked together:\n" +
		"Alice; Bob; Carol\n" +
		"Alice; Bob; Dave\n"
	assert.Equal(t, expected, buf.String())
}

func TestFormatAvoidersJSONL(t *testing.T) {
	var buf bytes.Buffer
	err := FormatAvoidersJSONL(&buf, []collab.Group{{"D", "E"}, {"F", "G"}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first avoiderLine
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, 2, first.Size)
	assert.Equal(t, []string{"D", "E"}, first.Artists)
}
