package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dyluth/cinereviews/internal/catalog"
	"github.com/dyluth/cinereviews/internal/journal"
	"github.com/dyluth/cinereviews/internal/logging"
	"github.com/dyluth/cinereviews/internal/printer"
	"github.com/dyluth/cinereviews/internal/shell"
	"github.com/dyluth/cinereviews/pkg/collab"
	"github.com/spf13/cobra"
)

var (
	runFile       string
	runConfigPath string
	runOutput     string
	runRedisURL   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the command interpreter",
	Long: `Run the CineReviews command interpreter.

Commands are read from standard input, or from --file, until "exit" or the end
of the input. Type "help" for the list of commands.

Output Formats:
  text  - Classic one-result-per-line output
  jsonl - Friends and avoiders results as line-delimited JSON

Journal:
  When journal.redis_url is configured (or --redis-url is given), every
  catalog change is appended to a Redis list and published for live
  consumers. The journal is never read back by run.

Examples:
  # Interactive session
  cinereviews run

  # Replay a script with debug logs
  cinereviews run --file session.txt --config cinereviews.yml

  # Avoider groups as JSON
  cinereviews run -f session.txt -o jsonl | jq '.artists'`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "Read commands from file instead of stdin")
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "Path to cinereviews.yml (defaults used if omitted)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Output format: text or jsonl (overrides output.format)")
	runCmd.Flags().StringVar(&runRedisURL, "redis-url", "", "Journal Redis URL (overrides journal.redis_url)")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), true)
	cfg, err := loadConfig(p, runConfigPath, runRedisURL)
	if err != nil {
		return err
	}
	p = printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), *cfg.Output.Color)

	format := cfg.Output.Format
	if runOutput != "" {
		format = runOutput
	}
	if format != shell.FormatText && format != shell.FormatJSONL {
		return p.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", format),
			[]string{"Valid formats: text, jsonl"},
		)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr()).
		With().Str("instance", cfg.Instance).Logger()

	catalogOpts := []catalog.Option{catalog.WithLogger(logger)}
	if cfg.JournalEnabled() {
		client, err := journal.Dial(ctx, cfg.Journal.RedisURL, cfg.Instance)
		if err != nil {
			return p.ErrorWithContext(
				"Redis connection failed",
				err.Error(),
				map[string]string{"Redis URL": cfg.Journal.RedisURL},
				[]string{
					"Check that Redis is running and reachable",
					"Remove journal.redis_url from the config to run without a journal",
				},
			)
		}
		defer client.Close()

		catalogOpts = append(catalogOpts, catalog.WithListener(shell.JournalListener(ctx, client, logger)))
		logger.Info().Msg("journal enabled")
	}

	var in io.Reader = cmd.InOrStdin()
	if runFile != "" {
		f, err := os.Open(runFile)
		if err != nil {
			return p.Error(
				"cannot open command file",
				err.Error(),
				[]string{"Check the --file path"},
			)
		}
		defer f.Close()
		in = f
	}

	engine := collab.NewEngine(collab.WithLogger(logger))
	cat := catalog.New(engine, catalogOpts...)
	interp := shell.New(cat, p.Out(), shell.WithFormat(format), shell.WithLogger(logger))

	if err := interp.Run(in); err != nil {
		return p.Error(
			"malformed input",
			err.Error(),
			[]string{"Type help to see the expected arguments of each command"},
		)
	}
	return nil
}
