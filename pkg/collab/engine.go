package collab

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Engine owns the artist registry, the collaboration graph and the size of
// the last avoider groups found. One Engine is constructed per application
// run. It is not safe for concurrent use.
type Engine struct {
	registry         *Registry
	graph            *Graph
	lastAvoidersSize int
	logger           zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug events. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger.With().Str("component", "collab").Logger()
	}
}

// NewEngine creates an engine with no artists.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		graph:  NewGraph(),
		logger: zerolog.Nop(),
	}
	e.registry = NewRegistry(e.artistCreated)

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// artistCreated links a new artist into the graph as an avoider of everyone.
func (e *Engine) artistCreated(name string) {
	e.graph.AddVertex(name)
	e.logger.Debug().
		Str("artist", name).
		Int("artists", e.graph.Len()).
		Msg("artist created")
}

// EnsureArtist registers name if unknown. Returns true if it was created.
func (e *Engine) EnsureArtist(name string) bool {
	_, created := e.registry.Add(name)
	return created
}

// AddArtistBio records the biography of name, creating the artist when it is
// unknown. Returns true if the artist was created. Fails with
// ErrAlreadyHasBio when the artist already has one.
func (e *Engine) AddArtistBio(name, dateOfBirth, placeOfBirth string) (bool, error) {
	a, created := e.registry.Add(name)
	if err := a.SetBio(dateOfBirth, placeOfBirth); err != nil {
		return false, err
	}
	return created, nil
}

// Artist looks up an artist by name.
func (e *Engine) Artist(name string) (*Artist, error) {
	a, ok := e.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownArtist, name)
	}
	return a, nil
}

// Artists returns every artist sorted by name.
func (e *Engine) Artists() []*Artist {
	return e.registry.All()
}

// PublishShow registers any unknown participant and records one
// collaboration between every pair of {director} plus cast. Returns the
// number of artists created.
func (e *Engine) PublishShow(title, director string, cast []string) int {
	created := 0
	if e.EnsureArtist(director) {
		created++
	}
	for _, name := range cast {
		if e.EnsureArtist(name) {
			created++
		}
	}

	e.graph.RecordShow(director, cast)

	e.logger.Debug().
		Str("show", title).
		Str("director", director).
		Int("cast", len(cast)).
		Int("new_artists", created).
		Msg("show recorded")
	return created
}

// Collaborations returns how many shows a and b appeared in together.
func (e *Engine) Collaborations(a, b string) int {
	return e.graph.Count(a, b)
}

// Avoids reports whether a and b are distinct known artists that never
// collaborated.
func (e *Engine) Avoids(a, b string) bool {
	return e.graph.Avoids(a, b)
}

// AvoidersOf returns the artists that never collaborated with name.
func (e *Engine) AvoidersOf(name string) []*Artist {
	return e.registry.lookup(e.graph.Avoiders(name))
}

// MostTimesWorked returns the highest number of shows name shared with any
// single artist.
func (e *Engine) MostTimesWorked(name string) int {
	return e.graph.LocalMax(name)
}

// AllFriends returns, sorted by name, every artist whose local max equals
// the highest local max of the registry.
//
// Fails with ErrNoArtists on an empty registry and ErrNoCollaborations when
// no pair of artists ever collaborated.
func (e *Engine) AllFriends() ([]*Artist, error) {
	if e.registry.Len() == 0 {
		return nil, ErrNoArtists
	}

	var friends []string
	globalMax := 0
	for _, name := range e.graph.names {
		m := e.graph.LocalMax(name)
		if m == 0 || m < globalMax {
			continue
		}
		if m > globalMax {
			globalMax = m
			friends = friends[:0]
		}
		friends = append(friends, name)
	}

	if len(friends) == 0 {
		return nil, ErrNoCollaborations
	}
	return e.registry.lookup(friends), nil
}

// FriendsOf returns the local friends of name whose names sort after it, so
// that each pair is reported once by its smaller member. Empty if none.
func (e *Engine) FriendsOf(name string) []*Artist {
	var after []string
	for _, f := range e.graph.LocalFriends(name) {
		if f > name {
			after = append(after, f)
		}
	}
	return e.registry.lookup(after)
}

// Avoiders returns every largest group of at least two artists that have
// pairwise never collaborated. Groups are distinct, ordered by descending
// size and then by comparing their sorted names pairwise. The size of the
// groups is remembered for LastAvoidersSize, 0 when no group exists.
//
// The search is recomputed on every call and is exponential in the worst
// case. Fails with ErrNoArtists on an empty registry.
func (e *Engine) Avoiders() ([]Group, error) {
	if e.registry.Len() == 0 {
		return nil, ErrNoArtists
	}

	groups, size := largestAvoiderGroups(e.graph)
	e.lastAvoidersSize = size

	e.logger.Debug().
		Int("artists", e.graph.Len()).
		Int("groups", len(groups)).
		Int("size", size).
		Msg("avoiders computed")
	return groups, nil
}

// LastAvoidersSize returns the group size found by the most recent Avoiders
// call, 0 before the first call.
func (e *Engine) LastAvoidersSize() int {
	return e.lastAvoidersSize
}
