package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/goquery"
	"github.com/fwojciec/webgrab/grab"
	webgrabhttp "github.com/fwojciec/webgrab/http"
	webgrabslog "github.com/fwojciec/webgrab/slog"
	"github.com/fwojciec/webgrab/zip"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Grabber used by all commands. Wired from flags when nil;
	// set before calling Run() to inject test doubles.
	Grabber *grab.Grabber
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webgrab"),
		kong.Description("Extract company info, contacts, social links and images from a web page."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webgrab --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Grabber = m.Grabber
	if deps.Grabber == nil {
		deps.Grabber = newGrabber(cli, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newGrabber wires the production collaborators from the global flags.
func newGrabber(cli *CLI, logger *slog.Logger) *grab.Grabber {
	fetcher := func(timeout time.Duration) webgrab.Fetcher {
		opts := []webgrabhttp.Option{webgrabhttp.WithTimeout(timeout)}
		if cli.UserAgent != "" {
			opts = append(opts, webgrabhttp.WithUserAgent(cli.UserAgent))
		}
		return webgrabslog.NewLoggingFetcher(webgrabhttp.NewFetcher(opts...), logger)
	}

	return &grab.Grabber{
		Fetcher:   fetcher(cli.Timeout),
		Extractor: webgrabslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Archiver: webgrabslog.NewLoggingArchiver(
			zip.NewArchiver(fetcher(cli.AssetTimeout),
				zip.WithTimeout(cli.AssetTimeout),
				zip.WithConcurrency(cli.Concurrency),
			),
			logger,
		),
	}
}
