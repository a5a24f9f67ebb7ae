package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/digest"
	"github.com/fwojciec/headlines/goquery"
	hlhttp "github.com/fwojciec/headlines/http"
	"github.com/fwojciec/headlines/rod"
	hlslog "github.com/fwojciec/headlines/slog"
	"github.com/fwojciec/headlines/yaml"
)

func main() {
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
	// Config file path used when --config is not given. Set before
	// calling Run().
	ConfigPath string

	// Fetcher replaces the network fetcher for end-to-end testing. It is
	// not closed by Run.
	Fetcher headlines.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: os.Getenv("HEADLINES_CONFIG"),
	}
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
		kong.Name("headlines"),
		kong.Description("Extract front-page articles and summarize their keywords"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'headlines --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Defaults, then the config file, then command flags.
	cfg := headlines.DefaultConfig()
	path := cli.Config
	if path == "" {
		path = m.ConfigPath
	}
	if path != "" {
		if cfg, err = yaml.LoadConfig(path, cfg); err != nil {
			fmt.Fprintf(stderr, "Hint: Set HEADLINES_CONFIG or --config to a readable YAML file\n")
			return err
		}
	}
	switch cmd {
	case "digest":
		cli.Digest.Configure(&cfg)
	case "batch":
		cli.Batch.Configure(&cfg)
	case "serve":
		cli.Serve.Configure(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	deps.Config = cfg

	logging := cli.Verbose || cmd == "serve"
	logger := slog.New(slog.DiscardHandler)
	if logging {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	deps.Logger = logger

	fetcher := m.Fetcher
	if fetcher == nil {
		if fetcher, err = newFetcher(cfg); err != nil {
			if cfg.Render {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			}
			return fmt.Errorf("failed to create fetcher: %w", err)
		}
		defer fetcher.Close()
	}

	var extractor headlines.Extractor = goquery.NewExtractor(goquery.WithLayout(cfg.Layout))
	if logging {
		fetcher = hlslog.NewLoggingFetcher(fetcher, logger)
		extractor = hlslog.NewLoggingExtractor(extractor, logger)
	}

	var digester headlines.Digester = &digest.Service{
		Fetcher:   fetcher,
		Extractor: extractor,
	}
	if logging {
		digester = hlslog.NewLoggingDigester(digester, logger)
	}
	deps.Digester = digester

	return kongCtx.Run(deps)
}

// newFetcher returns the browser fetcher when rendering is enabled and
// the plain HTTP fetcher otherwise.
func newFetcher(cfg headlines.Config) (headlines.Fetcher, error) {
	if cfg.Render {
		opts := []rod.Option{rod.WithUserAgent(cfg.UserAgent)}
		if cfg.Timeout > 0 {
			opts = append(opts, rod.WithFetchTimeout(cfg.Timeout))
		}
		f, err := rod.NewFetcher(opts...)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	opts := []hlhttp.Option{hlhttp.WithUserAgent(cfg.UserAgent)}
	if cfg.Timeout > 0 {
		opts = append(opts, hlhttp.WithTimeout(cfg.Timeout))
	}
	return hlhttp.NewFetcher(opts...), nil
}
