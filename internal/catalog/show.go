package catalog

import (
	"fmt"
	"sort"
)

// ShowKind distinguishes movies from series.
type ShowKind string

const (
	KindMovie  ShowKind = "movie"
	KindSeries ShowKind = "series"
)

// Artist roles within a show.
const (
	RoleDirector = "director"
	RoleCreator  = "creator"
	RoleActor    = "actor"
)

// Classification is the verdict of a review.
type Classification string

const (
	Excellent Classification = "excellent"
	Good      Classification = "good"
	Average   Classification = "average"
	Poor      Classification = "poor"
	Terrible  Classification = "terrible"
)

var classificationValues = map[Classification]int{
	Excellent: 5,
	Good:      4,
	Average:   3,
	Poor:      2,
	Terrible:  1,
}

// ParseClassification validates a classification as typed by a reviewer.
func ParseClassification(s string) (Classification, error) {
	c := Classification(s)
	if _, ok := classificationValues[c]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownClassification, s)
	}
	return c, nil
}

// Value returns the numeric score of the classification, 1 to 5.
func (c Classification) Value() int {
	return classificationValues[c]
}

// ShowSpec describes a show to upload. Length is the duration in minutes for
// a movie and the number of seasons for a series.
type ShowSpec struct {
	Kind             ShowKind
	Title            string
	Director         string
	Length           int
	AgeCertification string
	Year             int
	Genres           []string
	Cast             []string
}

// Show is an uploaded movie or series with its reviews.
type Show struct {
	ShowSpec

	uploader string
	reviews  map[string]*Review
}

// Review is one user's opinion of a show.
type Review struct {
	Reviewer       string
	ReviewerKind   UserKind
	Description    string
	Classification Classification
}

// MainGenre returns the first genre, empty if the show has none.
func (s *Show) MainGenre() string {
	if len(s.Genres) == 0 {
		return ""
	}
	return s.Genres[0]
}

// HasGenre reports whether genre is one of the show's genres.
func (s *Show) HasGenre(genre string) bool {
	for _, g := range s.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// RoleOf returns the role artist had in the show, empty if not credited.
func (s *Show) RoleOf(artist string) string {
	if artist == s.Director {
		if s.Kind == KindSeries {
			return RoleCreator
		}
		return RoleDirector
	}
	for _, name := range s.Cast {
		if name == artist {
			return RoleActor
		}
	}
	return ""
}

// ReviewCount returns the number of reviews.
func (s *Show) ReviewCount() int {
	return len(s.reviews)
}

// Score is the mean classification value of all reviews, 0 without reviews.
func (s *Show) Score() float64 {
	if len(s.reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.reviews {
		total += r.Classification.Value()
	}
	return float64(total) / float64(len(s.reviews))
}

// Reviews returns critic reviews first, then higher classifications, then
// reviewer name.
func (s *Show) Reviews() []*Review {
	out := make([]*Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.ReviewerKind == KindCritic) != (b.ReviewerKind == KindCritic) {
			return a.ReviewerKind == KindCritic
		}
		if a.Classification.Value() != b.Classification.Value() {
			return a.Classification.Value() > b.Classification.Value()
		}
		return a.Reviewer < b.Reviewer
	})
	return out
}

// sortByScore orders shows by score descending, then newer first, then title.
func sortByScore(shows []*Show) {
	sort.Slice(shows, func(i, j int) bool {
		a, b := shows[i], shows[j]
		if sa, sb := a.Score(), b.Score(); sa != sb {
			return sa > sb
		}
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Title < b.Title
	})
}

// sortByYear orders shows newer first, then by title.
func sortByYear(shows []*Show) {
	sort.Slice(shows, func(i, j int) bool {
		if shows[i].Year != shows[j].Year {
			return shows[i].Year > shows[j].Year
		}
		return shows[i].Title < shows[j].Title
	})
}
