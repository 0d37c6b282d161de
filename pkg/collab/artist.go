package collab

import (
	"fmt"
	"sort"
)

// Artist is a person credited in shows. The name is the identity: unique and
// case-sensitive. The biography is optional and can be set at most once.
type Artist struct {
	Name string

	dateOfBirth  string
	placeOfBirth string
	hasBio       bool
}

// HasBio reports whether a biography was recorded for the artist.
func (a *Artist) HasBio() bool {
	return a.hasBio
}

// DateOfBirth returns the recorded date of birth, empty without a bio.
func (a *Artist) DateOfBirth() string {
	return a.dateOfBirth
}

// PlaceOfBirth returns the recorded place of birth, empty without a bio.
func (a *Artist) PlaceOfBirth() string {
	return a.placeOfBirth
}

// SetBio records the biography. Returns ErrAlreadyHasBio if one exists.
func (a *Artist) SetBio(dateOfBirth, placeOfBirth string) error {
	if a.hasBio {
		return fmt.Errorf("%w: %s", ErrAlreadyHasBio, a.Name)
	}
	a.dateOfBirth = dateOfBirth
	a.placeOfBirth = placeOfBirth
	a.hasBio = true
	return nil
}

// Registry owns artist identities. Artists are created explicitly or on
// first appearance in a show and are never removed.
type Registry struct {
	artists  map[string]*Artist
	onCreate func(name string)
}

// NewRegistry returns an empty registry. onCreate, if not nil, is called
// once for every newly created artist before Add returns.
func NewRegistry(onCreate func(name string)) *Registry {
	return &Registry{
		artists:  make(map[string]*Artist),
		onCreate: onCreate,
	}
}

// Add returns the artist with the given name, creating it if needed.
// The boolean reports whether the artist was created by this call.
func (r *Registry) Add(name string) (*Artist, bool) {
	if a, exists := r.artists[name]; exists {
		return a, false
	}

	a := &Artist{Name: name}
	r.artists[name] = a
	if r.onCreate != nil {
		r.onCreate(name)
	}
	return a, true
}

// Get looks up an artist by name.
func (r *Registry) Get(name string) (*Artist, bool) {
	a, ok := r.artists[name]
	return a, ok
}

// Len returns the number of registered artists.
func (r *Registry) Len() int {
	return len(r.artists)
}

// All returns every artist sorted by name.
func (r *Registry) All() []*Artist {
	out := make([]*Artist, 0, len(r.artists))
	for _, a := range r.artists {
		out = append(out, a)
	}
	sortByName(out)
	return out
}

// lookup resolves names into artists, skipping unknown names, sorted by name.
func (r *Registry) lookup(names []string) []*Artist {
	out := make([]*Artist, 0, len(names))
	for _, name := range names {
		if a, ok := r.artists[name]; ok {
			out = append(out, a)
		}
	}
	sortByName(out)
	return out
}

func sortByName(artists []*Artist) {
	sort.Slice(artists, func(i, j int) bool {
		return artists[i].Name < artists[j].Name
	})
}
