package collab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(names ...string) *Graph {
	g := NewGraph()
	for _, n := range names {
		g.AddVertex(n)
	}
	return g
}

func TestGraph_AddVertex(t *testing.T) {
	g := NewGraph()

	assert.True(t, g.AddVertex("Carol"))
	assert.True(t, g.AddVertex("Alice"))
	assert.True(t, g.AddVertex("Bob"))
	assert.False(t, g.AddVertex("Alice"), "second add must be a no-op")

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, g.Names())
}

func TestGraph_NewVertexAvoidsEveryone(t *testing.T) {
	g := newTestGraph("Alice", "Bob")
	g.RecordShow("Alice", []string{"Bob"})

	g.AddVertex("Carol")

	assert.Equal(t, []string{"Alice", "Bob"}, g.Avoiders("Carol"))
	assert.Equal(t, []string{"Carol"}, g.Avoiders("Alice"))
	assert.Equal(t, []string{"Carol"}, g.Avoiders("Bob"))
}

func TestGraph_RecordShow(t *testing.T) {
	t.Run("counts every pair of cast and director", func(t *testing.T) {
		g := newTestGraph("Dir", "A", "B")
		g.RecordShow("Dir", []string{"A", "B"})

		assert.Equal(t, 1, g.Count("Dir", "A"))
		assert.Equal(t, 1, g.Count("Dir", "B"))
		assert.Equal(t, 1, g.Count("A", "B"))
		assert.Equal(t, 1, g.Count("B", "A"))
	})

	t.Run("director listed in cast counts once", func(t *testing.T) {
		g := newTestGraph("Dir", "A")
		g.RecordShow("Dir", []string{"Dir", "A", "A"})

		assert.Equal(t, 1, g.Count("Dir", "A"))
		assert.Equal(t, 0, g.Count("Dir", "Dir"))
		assert.Equal(t, 1, g.LocalMax("Dir"))
		assert.Equal(t, []string{"A"}, g.LocalFriends("Dir"))
	})

	t.Run("solo show records nothing", func(t *testing.T) {
		g := newTestGraph("Dir")
		g.RecordShow("Dir", nil)

		assert.Equal(t, 0, g.LocalMax("Dir"))
		assert.Empty(t, g.LocalFriends("Dir"))
	})

	t.Run("repeated pair increments", func(t *testing.T) {
		g := newTestGraph("Alice", "Bob")
		g.RecordShow("Alice", []string{"Bob"})
		g.RecordShow("Bob", []string{"Alice"})

		assert.Equal(t, 2, g.Count("Alice", "Bob"))
		assert.Equal(t, 2, g.LocalMax("Alice"))
		assert.Equal(t, 2, g.LocalMax("Bob"))
	})
}

func TestGraph_LocalFriends(t *testing.T) {
	g := newTestGraph("A", "B", "C", "D")

	g.RecordShow("A", []string{"B"})
	assert.Equal(t, 1, g.LocalMax("A"))
	assert.Equal(t, []string{"B"}, g.LocalFriends("A"))

	// Equal count joins the friend set.
	g.RecordShow("A", []string{"C"})
	assert.Equal(t, 1, g.LocalMax("A"))
	assert.Equal(t, []string{"B", "C"}, g.LocalFriends("A"))

	// A higher count replaces it.
	g.RecordShow("C", []string{"A"})
	assert.Equal(t, 2, g.LocalMax("A"))
	assert.Equal(t, []string{"C"}, g.LocalFriends("A"))
	assert.Equal(t, []string{"A"}, g.LocalFriends("C"))

	// B is untouched by shows it was not in.
	assert.Equal(t, 1, g.LocalMax("B"))
	assert.Equal(t, []string{"A"}, g.LocalFriends("B"))

	// Lower counts do not disturb the max.
	g.RecordShow("D", []string{"A"})
	assert.Equal(t, 2, g.LocalMax("A"))
	assert.Equal(t, []string{"C"}, g.LocalFriends("A"))
	assert.Equal(t, []string{"A"}, g.LocalFriends("D"))
}

func TestGraph_Avoids(t *testing.T) {
	g := newTestGraph("Alice", "Bob", "Carol")
	g.RecordShow("Alice", []string{"Bob"})

	assert.False(t, g.Avoids("Alice", "Bob"))
	assert.False(t, g.Avoids("Bob", "Alice"))
	assert.True(t, g.Avoids("Alice", "Carol"))
	assert.True(t, g.Avoids("Carol", "Bob"))
	assert.False(t, g.Avoids("Alice", "Alice"), "no self avoidance")
	assert.False(t, g.Avoids("Alice", "Nobody"), "unknown names avoid nothing")
	assert.Nil(t, g.Avoiders("Nobody"))
}

// TestGraph_Invariants replays a fixed script and checks symmetry, no
// self-pairs and monotonic shrink of every avoidance set after each step.
func TestGraph_Invariants(t *testing.T) {
	names := []string{"Ana", "Bea", "Cid", "Dan", "Eve", "Fay"}
	shows := []struct {
		director string
		cast     []string
	}{
		{"Ana", []string{"Bea"}},
		{"Cid", []string{"Dan", "Eve"}},
		{"Ana", []string{"Bea", "Cid"}},
		{"Fay", []string{"Fay"}},
		{"Eve", []string{"Ana"}},
		{"Dan", []string{"Bea", "Fay"}},
	}

	g := newTestGraph(names...)
	previous := make(map[string][]string)
	for _, n := range names {
		previous[n] = g.Avoiders(n)
	}

	for step, show := range shows {
		g.RecordShow(show.director, show.cast)

		for _, a := range names {
			current := g.Avoiders(a)
			assert.NotContains(t, current, a, "step %d: %s avoids itself", step, a)
			assert.NotContains(t, g.LocalFriends(a), a, "step %d: %s befriends itself", step, a)
			assert.Subset(t, previous[a], current, "step %d: avoiders of %s grew", step, a)
			previous[a] = current

			for _, b := range names {
				require.Equal(t, g.Avoids(a, b), g.Avoids(b, a), "step %d: asymmetric %s/%s", step, a, b)
				require.Equal(t, g.Count(a, b), g.Count(b, a), "step %d: asymmetric count %s/%s", step, a, b)
			}
		}
	}
}
