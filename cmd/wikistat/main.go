package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikistat"
	"github.com/fwojciec/wikistat/goquery"
	wikihttp "github.com/fwojciec/wikistat/http"
	"github.com/fwojciec/wikistat/mediawiki"
	wikislog "github.com/fwojciec/wikistat/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used for API requests. Set before calling Run() to replace
	// the HTTP fetcher, e.g. in end-to-end tests.
	Fetcher wikistat.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikistat"),
		kong.Description("Look up a Wikipedia article and count its unique words"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no title specified. Run 'wikistat --help' for usage")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(LogConfig{
		Level:    cli.LogLevel,
		FilePath: cli.LogFile,
	}, stderr)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", cli.LogFile, err)
	}
	defer closeLog()

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = wikihttp.NewFetcher(wikihttp.WithTimeout(cli.Timeout))
	}
	fetcher = wikislog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	opts := []mediawiki.Option{mediawiki.WithEndpoint(cli.Endpoint)}
	if cli.Strict {
		opts = append(opts, mediawiki.WithStrict())
	}

	deps.Pages = wikislog.NewLoggingPageService(
		mediawiki.NewPageService(fetcher, opts...), logger)
	deps.Identities = wikislog.NewLoggingPageService(
		mediawiki.NewPageService(fetcher, append(opts, mediawiki.WithIdentityOnly())...), logger)
	deps.Sanitizer = goquery.NewSanitizer()

	return kongCtx.Run(deps)
}
