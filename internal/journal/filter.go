package journal

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Filter selects journal entries. All criteria are ANDed; zero values match
// everything.
type Filter struct {
	SinceMs  int64  // Unix milliseconds, 0 = no lower bound
	UntilMs  int64  // Unix milliseconds, 0 = no upper bound
	TypeGlob string // glob over entry type, e.g. "show_*"
	Subject  string // exact subject match
}

// Matches reports whether e passes every criterion.
func (f *Filter) Matches(e *Entry) bool {
	if f.SinceMs > 0 && e.RecordedAtMs < f.SinceMs {
		return false
	}
	if f.UntilMs > 0 && e.RecordedAtMs > f.UntilMs {
		return false
	}
	if f.TypeGlob != "" {
		matched, err := filepath.Match(f.TypeGlob, e.Type)
		if err != nil || !matched {
			return false
		}
	}
	if f.Subject != "" && e.Subject != f.Subject {
		return false
	}
	return true
}

// Active reports whether any criterion is set.
func (f *Filter) Active() bool {
	return f.SinceMs > 0 || f.UntilMs > 0 || f.TypeGlob != "" || f.Subject != ""
}

// Query returns the most recent limit entries that pass f, in append order.
// limit <= 0 returns every match.
func (c *Client) Query(ctx context.Context, f *Filter, limit int) ([]*Entry, error) {
	if f == nil || !f.Active() {
		return c.List(ctx, limit)
	}
	if f.TypeGlob != "" {
		if _, err := filepath.Match(f.TypeGlob, ""); err != nil {
			return nil, fmt.Errorf("invalid type pattern %q: %w", f.TypeGlob, err)
		}
	}

	all, err := c.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	matched := make([]*Entry, 0, len(all))
	for _, e := range all {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched, nil
}

// ParseTime turns a time specification into Unix milliseconds. It accepts
// an RFC3339 timestamp ("2026-10-15T13:00:00Z") or a Go duration ("1h30m")
// counted back from now.
func ParseTime(spec string, now time.Time) (int64, error) {
	if spec == "" {
		return 0, fmt.Errorf("empty time specification")
	}
	if t, err := time.Parse(time.RFC3339, spec); err == nil {
		return t.UnixMilli(), nil
	}
	if d, err := time.ParseDuration(spec); err == nil {
		return now.Add(-d).UnixMilli(), nil
	}
	return 0, fmt.Errorf("invalid time specification: %s (use duration like '1h30m' or RFC3339 like '2026-10-15T13:00:00Z')", spec)
}

// ParseRange parses --since and --until. Empty values leave that bound open.
func ParseRange(since, until string, now time.Time) (int64, int64, error) {
	var sinceMs, untilMs int64
	var err error

	if since != "" {
		if sinceMs, err = ParseTime(since, now); err != nil {
			return 0, 0, fmt.Errorf("invalid --since: %w", err)
		}
	}
	if until != "" {
		if untilMs, err = ParseTime(until, now); err != nil {
			return 0, 0, fmt.Errorf("invalid --until: %w", err)
		}
	}

	if sinceMs > 0 && untilMs > 0 && sinceMs >= untilMs {
		return 0, 0, fmt.Errorf("--since must be before --until")
	}
	return sinceMs, untilMs, nil
}
