package shell

import (
	"errors"
	"io"
	"strings"

	"github.com/dyluth/cinereviews/internal/catalog"
	"github.com/dyluth/cinereviews/internal/report"
	"github.com/dyluth/cinereviews/pkg/collab"
)

const noShowsFound = "No show was found within the criteria."

// restOfLine consumes the remainder of the current line. End of input
// counts as an empty remainder.
func restOfLine(in *input) (string, error) {
	line, err := in.nextLine()
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	return line, err
}

func (i *Interpreter) register(in *input) error {
	kind, err := in.next()
	if err != nil {
		return err
	}
	name, err := in.next()
	if err != nil {
		return err
	}
	password := ""
	if kind == string(catalog.KindAdmin) {
		if password, err = in.next(); err != nil {
			return err
		}
	}
	if _, err := restOfLine(in); err != nil {
		return err
	}

	err = i.catalog.RegisterUser(kind, name, password)
	switch {
	case errors.Is(err, catalog.ErrUnknownUserType):
		i.println("Unknown user type!")
	case errors.Is(err, catalog.ErrUserExists):
		i.printf("User %s already exists!\n", name)
	case err != nil:
		return err
	default:
		i.printf("User %s was registered as %s.\n", name, kind)
	}
	return nil
}

func (i *Interpreter) users(*input) error {
	users := i.catalog.Users()
	if len(users) == 0 {
		i.println("No users registered.")
		return nil
	}

	i.println("All registered users:")
	for _, u := range users {
		if u.IsAdmin() {
			i.printf("Admin %s has uploaded %d shows\n", u.Name, u.PostedShows())
		} else {
			i.printf("User %s has posted %d reviews\n", u.Name, u.ReviewCount())
		}
	}
	return nil
}

func (i *Interpreter) movie(in *input) error {
	return i.upload(in, catalog.KindMovie)
}

func (i *Interpreter) series(in *input) error {
	return i.upload(in, catalog.KindSeries)
}

func (i *Interpreter) upload(in *input, kind catalog.ShowKind) error {
	admin, err := in.next()
	if err != nil {
		return err
	}
	password, err := in.next()
	if err != nil {
		return err
	}
	if _, err := restOfLine(in); err != nil {
		return err
	}

	spec, err := readShowSpec(in, kind)
	if err != nil {
		return err
	}

	created, err := i.catalog.AddShow(admin, password, spec)
	switch {
	case errors.Is(err, catalog.ErrNotAnAdmin):
		i.printf("Admin %s does not exist!\n", admin)
	case errors.Is(err, catalog.ErrWrongPassword):
		i.println("Invalid authentication!")
	case errors.Is(err, catalog.ErrShowExists):
		i.printf("Show %s already exists!\n", spec.Title)
	case err != nil:
		return err
	default:
		i.printf("%s %s (%d) was uploaded [%d new artists were created].\n",
			kindLabel(kind), spec.Title, spec.Year, created)
	}
	return nil
}

func readShowSpec(in *input, kind catalog.ShowKind) (catalog.ShowSpec, error) {
	spec := catalog.ShowSpec{Kind: kind}
	var err error

	if spec.Title, err = in.nextLine(); err != nil {
		return spec, err
	}
	if spec.Director, err = in.nextLine(); err != nil {
		return spec, err
	}
	if spec.Length, err = in.intLine(); err != nil {
		return spec, err
	}
	if spec.AgeCertification, err = in.nextLine(); err != nil {
		return spec, err
	}
	if spec.Year, err = in.intLine(); err != nil {
		return spec, err
	}
	if spec.Genres, err = in.sequence(); err != nil {
		return spec, err
	}
	if spec.Cast, err = in.sequence(); err != nil {
		return spec, err
	}
	return spec, nil
}

func (i *Interpreter) shows(*input) error {
	shows := i.catalog.Shows()
	if len(shows) == 0 {
		i.println("No shows have been uploaded.")
		return nil
	}

	i.println("All shows:")
	for _, s := range shows {
		i.printf("%s; %s; %d; %s; %d; %s; %s\n",
			s.Title, s.Director, s.Length, s.AgeCertification, s.Year,
			s.MainGenre(), strings.Join(s.Cast, "; "))
	}
	return nil
}

func (i *Interpreter) artist(in *input) error {
	name, err := in.nextLine()
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	dateOfBirth, err := in.nextLine()
	if err != nil {
		return err
	}
	placeOfBirth, err := in.nextLine()
	if err != nil {
		return err
	}

	created, err := i.catalog.AddArtistBio(name, dateOfBirth, placeOfBirth)
	switch {
	case errors.Is(err, collab.ErrAlreadyHasBio):
		i.printf("Bio of %s is already available!\n", name)
	case err != nil:
		return err
	case created:
		i.printf("%s bio was created.\n", name)
	default:
		i.printf("%s bio was updated.\n", name)
	}
	return nil
}

func (i *Interpreter) credits(in *input) error {
	name, err := restOfLine(in)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	artist, credits, err := i.catalog.Credits(name)
	if errors.Is(err, collab.ErrUnknownArtist) {
		i.printf("No information about %s!\n", name)
		return nil
	}
	if err != nil {
		return err
	}

	if artist.HasBio() {
		i.println(artist.DateOfBirth())
		i.println(artist.PlaceOfBirth())
	}
	for _, c := range credits {
		i.printf("%s; %d; %s [%s]\n", c.Show.Title, c.Show.Year, c.Role, c.Show.Kind)
	}
	return nil
}

func (i *Interpreter) review(in *input) error {
	user, err := in.next()
	if err != nil {
		return err
	}
	title, err := in.nextLine()
	if err != nil {
		return err
	}
	title = strings.TrimSpace(title)
	description, err := in.nextLine()
	if err != nil {
		return err
	}
	classification, err := in.nextLine()
	if err != nil {
		return err
	}

	count, err := i.catalog.ReviewShow(user, title, description, strings.TrimSpace(classification))
	switch {
	case errors.Is(err, catalog.ErrUnknownUser):
		i.printf("User %s does not exist!\n", user)
	case errors.Is(err, catalog.ErrIsAdmin):
		i.printf("Admin %s cannot review shows!\n", user)
	case errors.Is(err, catalog.ErrUnknownShow):
		i.printf("Show %s does not exist!\n", title)
	case errors.Is(err, catalog.ErrAlreadyReviewed):
		i.printf("%s has already reviewed %s!\n", user, title)
	case errors.Is(err, catalog.ErrUnknownClassification):
		i.printf("Unknown classification %s!\n", classification)
	case err != nil:
		return err
	default:
		i.printf("Review for %s was registered [%d reviews].\n", title, count)
	}
	return nil
}

func (i *Interpreter) reviews(in *input) error {
	title, err := restOfLine(in)
	if err != nil {
		return err
	}
	title = strings.TrimSpace(title)

	show, err := i.catalog.Show(title)
	if errors.Is(err, catalog.ErrUnknownShow) {
		i.printf("Show %s does not exist!\n", title)
		return nil
	}
	if err != nil {
		return err
	}

	reviews := show.Reviews()
	if len(reviews) == 0 {
		i.printf("Show %s has no reviews.\n", title)
		return nil
	}

	i.printf("Reviews of %s [%.1f]:\n", title, show.Score())
	for _, r := range reviews {
		i.printf("Review of %s (%s): %s [%s]\n", r.Reviewer, r.ReviewerKind, r.Description, r.Classification)
	}
	return nil
}

func (i *Interpreter) genre(in *input) error {
	genres, err := in.sequence()
	if err != nil {
		return err
	}

	shows := i.catalog.ShowsByGenres(genres)
	if len(shows) == 0 {
		i.println(noShowsFound)
		return nil
	}

	i.println("Search by genre:")
	i.showSummaries(shows)
	return nil
}

func (i *Interpreter) released(in *input) error {
	year, err := in.intLine()
	if err != nil {
		return err
	}

	shows := i.catalog.ShowsByYear(year)
	if len(shows) == 0 {
		i.println(noShowsFound)
		return nil
	}

	i.printf("Shows released on %d:\n", year)
	i.showSummaries(shows)
	return nil
}

func (i *Interpreter) showSummaries(shows []*catalog.Show) {
	for _, s := range shows {
		i.printf("%s %s by %s released on %d [%.1f]\n", kindLabel(s.Kind), s.Title, s.Director, s.Year, s.Score())
	}
}

func kindLabel(kind catalog.ShowKind) string {
	if kind == catalog.KindSeries {
		return "Series"
	}
	return "Movie"
}

func (i *Interpreter) friends(*input) error {
	f, err := report.CollectFriends(i.catalog.Engine())
	switch {
	case errors.Is(err, collab.ErrNoArtists):
		i.println("No artists yet!")
		return nil
	case errors.Is(err, collab.ErrNoCollaborations):
		i.println("No collaborations yet!")
		return nil
	case err != nil:
		return err
	}

	if i.format == FormatJSONL {
		return report.FormatFriendsJSONL(i.out, f)
	}
	report.FormatFriendsText(i.out, f)
	return nil
}

func (i *Interpreter) avoiders(*input) error {
	engine := i.catalog.Engine()
	groups, err := engine.Avoiders()
	if errors.Is(err, collab.ErrNoArtists) {
		i.println("No artists yet!")
		return nil
	}
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		i.println("Small world! All artists have worked with each other.")
		return nil
	}

	if i.format == FormatJSONL {
		return report.FormatAvoidersJSONL(i.out, groups)
	}
	report.FormatAvoidersText(i.out, engine.LastAvoidersSize(), groups)
	return nil
}
