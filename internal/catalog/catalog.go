// Package catalog holds the users, shows and reviews of a CineReviews run
// and feeds every published show into the collaboration engine.
package catalog

import (
	"fmt"
	"slices"
	"sort"

	"github.com/dyluth/cinereviews/pkg/collab"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// EventType names a change to the catalog.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventArtistCreated  EventType = "artist_created"
	EventBioAdded       EventType = "bio_added"
	EventShowPublished  EventType = "show_published"
	EventReviewPosted   EventType = "review_posted"
)

// Event describes a successful change. Subject is the user, artist or show
// the change is about.
type Event struct {
	Type    EventType
	Subject string
	Data    map[string]any
}

// Listener receives events after the change has been applied.
type Listener func(Event)

// Catalog is the in-memory state of one run. It is not safe for concurrent use.
type Catalog struct {
	engine       *collab.Engine
	users        map[string]*User
	shows        map[string]*Show
	showsByYear  map[int][]*Show
	credits      map[string][]*Show // artist -> shows
	listeners    []Listener
	passwordCost int
	logger       zerolog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithListener registers a listener for catalog events.
func WithListener(l Listener) Option {
	return func(c *Catalog) {
		c.listeners = append(c.listeners, l)
	}
}

// WithPasswordCost sets the bcrypt cost for admin passwords.
func WithPasswordCost(cost int) Option {
	return func(c *Catalog) {
		c.passwordCost = cost
	}
}

// WithLogger sets the catalog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger.With().Str("component", "catalog").Logger()
	}
}

// New creates an empty catalog on top of engine.
func New(engine *collab.Engine, opts ...Option) *Catalog {
	c := &Catalog{
		engine:       engine,
		users:        make(map[string]*User),
		shows:        make(map[string]*Show),
		showsByYear:  make(map[int][]*Show),
		credits:      make(map[string][]*Show),
		passwordCost: bcrypt.DefaultCost,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Engine returns the collaboration engine fed by this catalog.
func (c *Catalog) Engine() *collab.Engine {
	return c.engine
}

func (c *Catalog) emit(t EventType, subject string, data map[string]any) {
	ev := Event{Type: t, Subject: subject, Data: data}
	for _, l := range c.listeners {
		l(ev)
	}
}

// RegisterUser creates a user. The password is only kept for admins.
func (c *Catalog) RegisterUser(kind, name, password string) error {
	k, err := ParseUserKind(kind)
	if err != nil {
		return err
	}
	if _, exists := c.users[name]; exists {
		return fmt.Errorf("%w: %s", ErrUserExists, name)
	}

	u := &User{Name: name, Kind: k}
	if k == KindAdmin {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), c.passwordCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		u.passwordHash = hash
	}
	c.users[name] = u

	c.emit(EventUserRegistered, name, map[string]any{"kind": string(k)})
	return nil
}

// Users returns every user sorted by name.
func (c *Catalog) Users() []*User {
	out := make([]*User, 0, len(c.users))
	for _, u := range c.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddShow uploads a movie or series on behalf of an admin and records the
// collaborations of its director and cast. Returns how many artists were
// created by the upload.
func (c *Catalog) AddShow(adminName, password string, spec ShowSpec) (int, error) {
	admin, ok := c.users[adminName]
	if !ok || !admin.IsAdmin() {
		return 0, fmt.Errorf("%w: %s", ErrNotAnAdmin, adminName)
	}
	if !admin.passwordMatches(password) {
		return 0, ErrWrongPassword
	}
	if _, exists := c.shows[spec.Title]; exists {
		return 0, fmt.Errorf("%w: %s", ErrShowExists, spec.Title)
	}

	spec.Genres = slices.Clone(spec.Genres)
	spec.Cast = slices.Clone(spec.Cast)
	show := &Show{
		ShowSpec: spec,
		uploader: adminName,
		reviews:  make(map[string]*Review),
	}

	created := 0
	for _, name := range append([]string{spec.Director}, spec.Cast...) {
		if c.engine.EnsureArtist(name) {
			created++
			c.emit(EventArtistCreated, name, nil)
		}
		if !slices.Contains(c.credits[name], show) {
			c.credits[name] = append(c.credits[name], show)
		}
	}
	c.engine.PublishShow(spec.Title, spec.Director, spec.Cast)

	c.shows[spec.Title] = show
	c.showsByYear[spec.Year] = append(c.showsByYear[spec.Year], show)
	admin.postedShows++

	c.logger.Debug().
		Str("show", spec.Title).
		Str("kind", string(spec.Kind)).
		Str("admin", adminName).
		Int("new_artists", created).
		Msg("show uploaded")
	c.emit(EventShowPublished, spec.Title, map[string]any{
		"kind":     string(spec.Kind),
		"director": spec.Director,
		"cast":     spec.Cast,
		"year":     spec.Year,
	})
	return created, nil
}

// Shows returns every show sorted by title.
func (c *Catalog) Shows() []*Show {
	out := make([]*Show, 0, len(c.shows))
	for _, s := range c.shows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// Show looks up a show by title.
func (c *Catalog) Show(title string) (*Show, error) {
	s, ok := c.shows[title]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShow, title)
	}
	return s, nil
}

// AddArtistBio records an artist biography, creating the artist if needed.
// Returns true if the artist was created.
func (c *Catalog) AddArtistBio(name, dateOfBirth, placeOfBirth string) (bool, error) {
	created, err := c.engine.AddArtistBio(name, dateOfBirth, placeOfBirth)
	if err != nil {
		return false, err
	}
	if created {
		c.emit(EventArtistCreated, name, nil)
	}
	c.emit(EventBioAdded, name, map[string]any{
		"date_of_birth":  dateOfBirth,
		"place_of_birth": placeOfBirth,
	})
	return created, nil
}

// Credit is one show an artist took part in.
type Credit struct {
	Show *Show
	Role string
}

// Credits returns the artist and its credits, newest shows first.
func (c *Catalog) Credits(name string) (*collab.Artist, []Credit, error) {
	artist, err := c.engine.Artist(name)
	if err != nil {
		return nil, nil, err
	}

	shows := slices.Clone(c.credits[name])
	sortByYear(shows)

	credits := make([]Credit, 0, len(shows))
	for _, s := range shows {
		credits = append(credits, Credit{Show: s, Role: s.RoleOf(name)})
	}
	return artist, credits, nil
}

// ReviewShow posts a review by a critic or audience member. Returns the
// number of reviews the show has afterwards.
func (c *Catalog) ReviewShow(username, title, description, classification string) (int, error) {
	u, ok := c.users[username]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUser, username)
	}
	if u.IsAdmin() {
		return 0, fmt.Errorf("%w: %s", ErrIsAdmin, username)
	}
	show, err := c.Show(title)
	if err != nil {
		return 0, err
	}
	if _, done := show.reviews[username]; done {
		return 0, fmt.Errorf("%w: %s reviewed %s", ErrAlreadyReviewed, username, title)
	}
	cls, err := ParseClassification(classification)
	if err != nil {
		return 0, err
	}

	show.reviews[username] = &Review{
		Reviewer:       username,
		ReviewerKind:   u.Kind,
		Description:    description,
		Classification: cls,
	}
	u.reviewCount++

	c.emit(EventReviewPosted, title, map[string]any{
		"reviewer":       username,
		"classification": string(cls),
	})
	return show.ReviewCount(), nil
}

// ShowsByYear returns the shows released in year ordered by score.
func (c *Catalog) ShowsByYear(year int) []*Show {
	out := slices.Clone(c.showsByYear[year])
	sortByScore(out)
	return out
}

// ShowsByGenres returns the shows that have every one of genres, ordered by
// score. With no genres every show matches.
func (c *Catalog) ShowsByGenres(genres []string) []*Show {
	var out []*Show
	for _, s := range c.shows {
		matches := true
		for _, g := range genres {
			if !s.HasGenre(g) {
				matches = false
				break
			}
		}
		if matches {
			out = append(out, s)
		}
	}
	sortByScore(out)
	return out
}
