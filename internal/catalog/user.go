package catalog

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// UserKind is the role a user registered with.
type UserKind string

const (
	KindAdmin    UserKind = "admin"
	KindCritic   UserKind = "critic"
	KindAudience UserKind = "audience"
)

// ParseUserKind validates a user type as typed on the command line.
func ParseUserKind(s string) (UserKind, error) {
	switch k := UserKind(s); k {
	case KindAdmin, KindCritic, KindAudience:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownUserType, s)
	}
}

// User is a registered account. Admins upload shows; critics and audience
// members review them.
type User struct {
	Name string
	Kind UserKind

	passwordHash []byte
	postedShows  int
	reviewCount  int
}

// IsAdmin reports whether the user can upload shows.
func (u *User) IsAdmin() bool {
	return u.Kind == KindAdmin
}

// PostedShows returns how many shows an admin uploaded.
func (u *User) PostedShows() int {
	return u.postedShows
}

// ReviewCount returns how many reviews a critic or audience member posted.
func (u *User) ReviewCount() int {
	return u.reviewCount
}

func (u *User) passwordMatches(password string) bool {
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil
}
