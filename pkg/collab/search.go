package collab

import (
	"slices"
	"strings"
)

// Group is a set of artist names kept in ascending order.
type Group []string

func newGroup(names []string) Group {
	g := Group(slices.Clone(names))
	slices.Sort(g)
	return g
}

// compareGroups orders larger groups first, then compares names pairwise.
func compareGroups(a, b Group) int {
	if len(a) != len(b) {
		return len(b) - len(a)
	}
	for i := range a {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// searcher finds the largest sets of mutually avoiding vertices of a graph.
//
// Groups are grown from their lexicographically largest member downwards:
// from current, only avoiders with a strictly smaller name are candidates.
// This visits every clique of the complement graph through exactly one
// descending path and makes names strictly decrease along any recursion, so
// the search terminates.
type searcher struct {
	g *Graph
}

// search returns the largest groups that contain partial plus current and
// can only be extended by names below current. partial is never modified.
func (s searcher) search(current string, partial []string) []Group {
	candidates := s.candidates(current, partial)

	next := make([]string, len(partial), len(partial)+1)
	copy(next, partial)
	next = append(next, current)

	if len(candidates) == 0 {
		return []Group{newGroup(next)}
	}

	var best []Group
	bestSize := 0
	for i := len(candidates) - 1; i >= 0; i-- {
		// Below candidates[i] only candidates[:i] can still join.
		if len(next)+1+i < bestSize {
			break
		}
		best, bestSize = keepLargest(best, bestSize, s.search(candidates[i], next))
	}
	return best
}

// candidates returns, ascending, the names below current that avoid current
// and every member of partial.
func (s searcher) candidates(current string, partial []string) []string {
	end, _ := slices.BinarySearch(s.g.names, current)

	var out []string
	for _, c := range s.g.names[:end] {
		if !s.g.Avoids(current, c) {
			continue
		}
		if s.avoidsAll(c, partial) {
			out = append(out, c)
		}
	}
	return out
}

func (s searcher) avoidsAll(c string, members []string) bool {
	for _, m := range members {
		if !s.g.Avoids(c, m) {
			return false
		}
	}
	return true
}

// keepLargest merges found into best, keeping only groups of the largest
// size seen. Groups of fewer than two members are dropped.
func keepLargest(best []Group, bestSize int, found []Group) ([]Group, int) {
	for _, grp := range found {
		switch {
		case len(grp) < 2:
			continue
		case len(grp) > bestSize:
			best = []Group{grp}
			bestSize = len(grp)
		case len(grp) == bestSize:
			best = append(best, grp)
		}
	}
	return best, bestSize
}

// largestAvoiderGroups runs the search from every vertex and returns the
// distinct largest groups, sorted, with their size (0 when none qualify).
func largestAvoiderGroups(g *Graph) ([]Group, int) {
	s := searcher{g: g}

	var best []Group
	bestSize := 0
	for i := len(g.names) - 1; i >= 0; i-- {
		// A group whose largest member is names[i] has at most i+1 members.
		if i+1 < bestSize {
			break
		}
		best, bestSize = keepLargest(best, bestSize, s.search(g.names[i], nil))
	}

	slices.SortFunc(best, compareGroups)
	best = slices.CompactFunc(best, func(a, b Group) bool {
		return compareGroups(a, b) == 0
	})
	return best, bestSize
}
