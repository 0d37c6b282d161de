package collab

import "errors"

var (
	// ErrNoArtists is returned by queries that need at least one registered artist.
	ErrNoArtists = errors.New("no artists registered")

	// ErrNoCollaborations is returned by AllFriends when no two artists have
	// ever appeared in the same show.
	ErrNoCollaborations = errors.New("no collaborations recorded")

	// ErrAlreadyHasBio is returned when a biography is set twice for one artist.
	ErrAlreadyHasBio = errors.New("artist already has a bio")

	// ErrUnknownArtist is returned when looking up a name that was never registered.
	ErrUnknownArtist = errors.New("unknown artist")
)
