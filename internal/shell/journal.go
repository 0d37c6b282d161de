package shell

import (
	"context"

	"github.com/dyluth/cinereviews/internal/catalog"
	"github.com/dyluth/cinereviews/internal/journal"
	"github.com/rs/zerolog"
)

// Appender records catalog events. Satisfied by *journal.Client.
type Appender interface {
	Append(ctx context.Context, eventType, subject string, data map[string]any) (*journal.Entry, error)
}

// JournalListener forwards catalog events to the journal. A failed append
// is logged and does not interrupt the run.
func JournalListener(ctx context.Context, a Appender, logger zerolog.Logger) catalog.Listener {
	return func(ev catalog.Event) {
		entry, err := a.Append(ctx, string(ev.Type), ev.Subject, ev.Data)
		if err != nil {
			logger.Warn().Err(err).
				Str("event", string(ev.Type)).
				Str("subject", ev.Subject).
				Msg("failed to journal event")
			return
		}
		logger.Debug().Str("entry_id", entry.ID).Str("event", string(ev.Type)).Msg("event journaled")
	}
}
