// Package report formats query results for the terminal.
//
// Every result has a text form, matching the interpreter's classic output,
// and a JSONL form for piping into tools like jq.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/cinereviews/pkg/collab"
)

// FriendPair is two artists who share the highest collaboration count.
// First sorts before Second.
type FriendPair struct {
	First    string `json:"first"`
	Second   string `json:"second"`
	Projects int    `json:"projects"`
}

// Friends is the result of a friends query.
type Friends struct {
	Projects int
	Pairs    []FriendPair
}

// CollectFriends gathers every pair of artists that collaborated the most.
// Returns collab.ErrNoArtists or collab.ErrNoCollaborations unchanged.
func CollectFriends(e *collab.Engine) (Friends, error) {
	top, err := e.AllFriends()
	if err != nil {
		return Friends{}, err
	}

	f := Friends{Projects: e.MostTimesWorked(top[0].Name)}
	for _, a := range top {
		for _, b := range e.FriendsOf(a.Name) {
			f.Pairs = append(f.Pairs, FriendPair{First: a.Name, Second: b.Name, Projects: f.Projects})
		}
	}
	return f, nil
}

// FormatFriendsText writes the header followed by one "A and B" line per pair.
func FormatFriendsText(w io.Writer, f Friends) {
	fmt.Fprintf(w, "These artists have worked on %d projects together\n", f.Projects)
	for _, p := range f.Pairs {
		fmt.Fprintf(w, "%s and %s\n", p.First, p.Second)
	}
}

// FormatFriendsJSONL writes one JSON object per pair.
func FormatFriendsJSONL(w io.Writer, f Friends) error {
	for _, p := range f.Pairs {
		if err := writeJSONLine(w, p); err != nil {
			return err
		}
	}
	return nil
}

type avoiderLine struct {
	Size    int      `json:"size"`
	Artists []string `json:"artists"`
}

// FormatAvoidersText writes the header followed by one line per group with
// members separated by "; ".
func FormatAvoidersText(w io.Writer, size int, groups []collab.Group) {
	fmt.Fprintf(w, "These %d artists never worked together:\n", size)
	for _, g := range groups {
		fmt.Fprintln(w, strings.Join(g, "; "))
	}
}

// FormatAvoidersJSONL writes one JSON object per group.
func FormatAvoidersJSONL(w io.Writer, groups []collab.Group) error {
	for _, g := range groups {
		if err := writeJSONLine(w, avoiderLine{Size: len(g), Artists: g}); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write JSONL output: %w", err)
	}
	return nil
}
