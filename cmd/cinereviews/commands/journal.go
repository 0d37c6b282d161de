package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dyluth/cinereviews/internal/journal"
	"github.com/dyluth/cinereviews/internal/printer"
	"github.com/dyluth/cinereviews/internal/report"
	"github.com/spf13/cobra"
)

var (
	journalConfigPath string
	journalRedisURL   string
	journalLimit      int
	journalOutput     string
	journalSince      string
	journalUntil      string
	journalType       string
	journalSubject    string
	journalFollow     bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recorded catalog events",
	Long: `Show the catalog events recorded in the Redis journal by previous runs.

Time Filters:
  --since  - Show entries recorded after this time
  --until  - Show entries recorded before this time

Content Filters:
  --type    - Filter by event type (glob pattern: "show_*", "*_created")
  --subject - Filter by user, artist or show (exact match)

Output Formats:
  default - Human-readable table with ID, Type, Subject, Age and Data
  jsonl   - Line-delimited JSON, one entry per line

Examples:
  # Last 20 events
  cinereviews journal --limit 20

  # Shows published in the last two hours
  cinereviews journal --type="show_*" --since=2h

  # Keep printing new events until interrupted
  cinereviews journal --follow

  # Stream entries to jq
  cinereviews journal -o jsonl | jq 'select(.type=="show_published") | .subject'`,
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().StringVarP(&journalConfigPath, "config", "c", "", "Path to cinereviews.yml")
	journalCmd.Flags().StringVar(&journalRedisURL, "redis-url", "", "Journal Redis URL (overrides journal.redis_url)")
	journalCmd.Flags().IntVar(&journalLimit, "limit", 0, "Show only the most recent N entries (0 for all)")
	journalCmd.Flags().StringVarP(&journalOutput, "output", "o", "default", "Output format: default or jsonl")

	journalCmd.Flags().StringVar(&journalSince, "since", "", "Show entries after time (duration or RFC3339)")
	journalCmd.Flags().StringVar(&journalUntil, "until", "", "Show entries before time (duration or RFC3339)")
	journalCmd.Flags().StringVar(&journalType, "type", "", "Filter by event type (glob pattern)")
	journalCmd.Flags().StringVar(&journalSubject, "subject", "", "Filter by subject (exact match)")
	journalCmd.Flags().BoolVarP(&journalFollow, "follow", "F", false, "Keep streaming new entries until interrupted")

	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), true)
	cfg, err := loadConfig(p, journalConfigPath, journalRedisURL)
	if err != nil {
		return err
	}
	p = printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), *cfg.Output.Color)

	if journalOutput != "default" && journalOutput != "jsonl" {
		return p.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", journalOutput),
			[]string{"Valid formats: default, jsonl"},
		)
	}

	now := time.Now()
	sinceMs, untilMs, err := journal.ParseRange(journalSince, journalUntil, now)
	if err != nil {
		return p.Error(
			"invalid time filter",
			err.Error(),
			[]string{"Use duration format like '1h30m' or RFC3339 like '2026-10-15T13:00:00Z'"},
		)
	}
	filter := &journal.Filter{
		SinceMs:  sinceMs,
		UntilMs:  untilMs,
		TypeGlob: journalType,
		Subject:  journalSubject,
	}

	if !cfg.JournalEnabled() {
		return p.Error(
			"journal not configured",
			"No Redis URL is set for the journal.",
			[]string{
				"Set journal.redis_url in cinereviews.yml and pass --config",
				"Pass --redis-url redis://localhost:6379",
			},
		)
	}

	client, err := journal.Dial(ctx, cfg.Journal.RedisURL, cfg.Instance)
	if err != nil {
		return p.ErrorWithContext(
			"Redis connection failed",
			err.Error(),
			map[string]string{"Redis URL": cfg.Journal.RedisURL},
			[]string{"Check that Redis is running and reachable"},
		)
	}
	defer client.Close()

	// Subscribe before reading history so nothing appended in between is lost
	var sub *journal.Subscription
	if journalFollow {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		sub, err = client.Subscribe(ctx)
		if err != nil {
			return fmt.Errorf("failed to follow journal: %w", err)
		}
		defer sub.Close()
	}

	entries, err := client.Query(ctx, filter, journalLimit)
	if err != nil {
		return fmt.Errorf("failed to list journal: %w", err)
	}

	if journalOutput == "jsonl" {
		if err := report.FormatJournalJSONL(p.Out(), entries); err != nil {
			return err
		}
	} else {
		report.FormatJournalTable(p.Out(), entries, cfg.Instance, now)
	}

	if sub == nil {
		return nil
	}
	return followJournal(ctx, sub, filter, p, journalOutput == "jsonl")
}

// followJournal prints matching entries as they arrive until ctx is done or
// the subscription ends.
func followJournal(ctx context.Context, sub *journal.Subscription, filter *journal.Filter, p *printer.Printer, jsonl bool) error {
	var w io.Writer = p.Out()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-sub.Errors():
			// Keep the JSONL stream parseable
			if ok && !jsonl {
				p.Warning("%v\n", err)
			}
		case e, ok := <-sub.Entries():
			if !ok {
				return nil
			}
			if !filter.Matches(e) {
				continue
			}
			if jsonl {
				if err := report.FormatJournalJSONL(w, []*journal.Entry{e}); err != nil {
					return err
				}
				continue
			}
			report.FormatJournalRow(w, e, time.Now())
		}
	}
}
