package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dyluth/cinereviews/internal/journal"
)

// FormatJournalTable writes journal entries as a table. now anchors the AGE
// column. Returns the number of entries formatted.
func FormatJournalTable(w io.Writer, entries []*journal.Entry, instanceName string, now time.Time) int {
	if len(entries) == 0 {
		fmt.Fprintf(w, "No journal entries found for instance '%s'\n", instanceName)
		return 0
	}

	fmt.Fprintf(w, "Journal for instance '%s':\n\n", instanceName)

	fmt.Fprintf(w, "%-10s %-15s %-24s %-8s %s\n",
		"ID", "TYPE", "SUBJECT", "AGE", "DATA")
	fmt.Fprintf(w, "%-10s %-15s %-24s %-8s %s\n",
		"----------", "---------------", "------------------------", "--------", "----------------------------------------")

	for _, e := range entries {
		FormatJournalRow(w, e, now)
	}

	countMsg := "entry"
	if len(entries) != 1 {
		countMsg = "entries"
	}
	fmt.Fprintf(w, "\n%d %s found\n", len(entries), countMsg)

	return len(entries)
}

// FormatJournalRow writes a single table row. Used on its own when following
// the journal live.
func FormatJournalRow(w io.Writer, e *journal.Entry, now time.Time) {
	fmt.Fprintf(w, "%-10s %-15s %-24s %-8s %s\n",
		formatID(e.ID),
		e.Type,
		formatSubject(e.Subject),
		formatAge(e.RecordedAtMs, now),
		formatData(e.Data),
	)
}

// FormatJournalJSONL writes each entry as a single JSON line.
func FormatJournalJSONL(w io.Writer, entries []*journal.Entry) error {
	for _, e := range entries {
		if err := writeJSONLine(w, e); err != nil {
			return err
		}
	}
	return nil
}

// formatID truncates an entry ID to its first 8 characters.
func formatID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatSubject(subject string) string {
	if subject == "" {
		return "-"
	}
	if len(subject) > 24 {
		return subject[:21] + "..."
	}
	return subject
}

// formatData renders event data as sorted key=value pairs, at most 40
// characters. Empty data returns "-".
func formatData(data map[string]any) string {
	if len(data) == 0 {
		return "-"
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, err := json.Marshal(data[k])
		if err != nil {
			v = []byte("?")
		}
		parts = append(parts, k+"="+string(v))
	}

	out := strings.Join(parts, " ")
	if len(out) > 40 {
		return out[:37] + "..."
	}
	return out
}

// formatAge renders a millisecond timestamp relative to now, like "2m ago".
func formatAge(timestampMs int64, now time.Time) string {
	if timestampMs == 0 {
		return "-"
	}

	diff := now.Sub(time.UnixMilli(timestampMs))
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
