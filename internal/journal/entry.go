// Package journal mirrors catalog events to Redis as an audit feed.
//
// Entries are appended to a per-instance list and published on a
// per-instance channel for live consumers. The journal is write-only from
// the point of view of a run: nothing is read back into the catalog.
package journal

import (
	"fmt"

	"github.com/google/uuid"
)

// Entry is one recorded catalog event.
type Entry struct {
	ID           string         `json:"id"`         // UUID
	Type         string         `json:"type"`       // e.g. "show_published"
	Subject      string         `json:"subject"`    // user, artist or show the event is about
	Data         map[string]any `json:"data,omitempty"`
	RecordedAtMs int64          `json:"recorded_at_ms"`
}

// Validate checks the entry can be written.
func (e *Entry) Validate() error {
	if _, err := uuid.Parse(e.ID); err != nil {
		return fmt.Errorf("invalid entry ID %q: %w", e.ID, err)
	}
	if e.Type == "" {
		return fmt.Errorf("entry type cannot be empty")
	}
	return nil
}
