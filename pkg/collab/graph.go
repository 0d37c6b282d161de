package collab

import (
	"slices"
	"sort"
)

// Graph is an undirected, incrementally weighted collaboration graph.
//
// Each unordered pair of vertices carries a count of shows both appeared in.
// Counts are stored in both directions so that lookups never need to order
// the pair. For every vertex the graph also keeps the highest count of any of
// its edges (local max) and the set of neighbours that reach it (local
// friends). Both are maintained on every increment and never recomputed.
//
// Avoidance is the complement of adjacency: two distinct vertices avoid each
// other while their count is zero.
type Graph struct {
	names        []string // ascending
	counts       map[string]map[string]int
	localMax     map[string]int
	localFriends map[string]map[string]struct{}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		counts:       make(map[string]map[string]int),
		localMax:     make(map[string]int),
		localFriends: make(map[string]map[string]struct{}),
	}
}

// AddVertex registers a vertex. It avoids every vertex already present.
// Returns false if the vertex already exists.
func (g *Graph) AddVertex(name string) bool {
	if _, exists := g.counts[name]; exists {
		return false
	}

	g.counts[name] = make(map[string]int)
	g.localFriends[name] = make(map[string]struct{})

	i, _ := slices.BinarySearch(g.names, name)
	g.names = slices.Insert(g.names, i, name)
	return true
}

// Has reports whether the vertex exists.
func (g *Graph) Has(name string) bool {
	_, ok := g.counts[name]
	return ok
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.names)
}

// Names returns all vertices in ascending order.
func (g *Graph) Names() []string {
	return slices.Clone(g.names)
}

// RecordShow adds one collaboration for every unordered pair of distinct
// participants, where the participants are the cast plus the director.
// A director who is also listed in the cast counts once. Every participant
// must already be a vertex.
func (g *Graph) RecordShow(director string, cast []string) {
	participants := participantsOf(director, cast)
	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			g.increment(participants[i], participants[j])
		}
	}
}

// participantsOf returns director followed by the cast, without duplicates.
func participantsOf(director string, cast []string) []string {
	seen := map[string]struct{}{director: {}}
	out := []string{director}
	for _, name := range cast {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func (g *Graph) increment(x, y string) {
	g.counts[x][y]++
	g.counts[y][x]++

	n := g.counts[x][y]
	g.promote(x, y, n)
	g.promote(y, x, n)
}

// promote updates v's local max and friends after its edge to friend
// reached n.
func (g *Graph) promote(v, friend string, n int) {
	switch {
	case n > g.localMax[v]:
		g.localMax[v] = n
		g.localFriends[v] = map[string]struct{}{friend: {}}
	case n == g.localMax[v]:
		g.localFriends[v][friend] = struct{}{}
	}
}

// Count returns how many shows x and y appeared in together.
func (g *Graph) Count(x, y string) int {
	return g.counts[x][y]
}

// Adjacent reports whether x and y collaborated at least once.
func (g *Graph) Adjacent(x, y string) bool {
	return g.counts[x][y] > 0
}

// Avoids reports whether x and y are distinct known vertices that never
// collaborated.
func (g *Graph) Avoids(x, y string) bool {
	if x == y || !g.Has(x) || !g.Has(y) {
		return false
	}
	return !g.Adjacent(x, y)
}

// Avoiders returns, in ascending order, every vertex that never collaborated
// with name.
func (g *Graph) Avoiders(name string) []string {
	if !g.Has(name) {
		return nil
	}

	var out []string
	for _, other := range g.names {
		if g.Avoids(name, other) {
			out = append(out, other)
		}
	}
	return out
}

// LocalMax returns the highest collaboration count of any edge of name,
// 0 if it never collaborated.
func (g *Graph) LocalMax(name string) int {
	return g.localMax[name]
}

// LocalFriends returns, in ascending order, the neighbours of name whose
// count equals its local max.
func (g *Graph) LocalFriends(name string) []string {
	friends := g.localFriends[name]
	out := make([]string, 0, len(friends))
	for f := range friends {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
