package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   headlines.Config
	Logger   *slog.Logger
	Digester headlines.Digester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" type:"path" help:"YAML config file (default: $HEADLINES_CONFIG)"`
	Verbose bool   `short:"v" help:"Log pipeline steps to stderr"`

	Digest DigestCmd `cmd:"" help:"Digest a front page into articles, keywords and metrics"`
	Batch  BatchCmd  `cmd:"" help:"Digest several front pages independently"`
	Serve  ServeCmd  `cmd:"" help:"Serve digests over a JSON API"`
}

// DigestCmd is the "digest" subcommand.
type DigestCmd struct {
	Source  string        `short:"s" help:"Front page URL (default from config)"`
	Limit   int           `short:"n" help:"Number of keywords to keep (default from config)"`
	Format  string        `short:"f" enum:"json,text" default:"json" help:"Output format (json, text)"`
	Render  bool          `short:"r" help:"Render the page in headless Chrome"`
	Timeout time.Duration `short:"t" help:"Fetch timeout (default from config)"`
}

// Configure applies the flags that were given to cfg.
func (c *DigestCmd) Configure(cfg *headlines.Config) {
	if c.Source != "" {
		cfg.Source = c.Source
	}
	if c.Limit != 0 {
		cfg.KeywordLimit = c.Limit
	}
	if c.Render {
		cfg.Render = true
	}
	if c.Timeout != 0 {
		cfg.Timeout = c.Timeout
	}
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"Front page URLs (default: sources from config)"`
	Concurrency int      `short:"j" help:"Concurrent digest limit (default from config)"`
	Rate        float64  `help:"Requests per second per domain (default from config)"`
	Render      bool     `short:"r" help:"Render pages in headless Chrome"`
}

// Configure applies the flags that were given to cfg.
func (c *BatchCmd) Configure(cfg *headlines.Config) {
	if len(c.URLs) > 0 {
		cfg.Sources = c.URLs
	}
	if c.Concurrency != 0 {
		cfg.Concurrency = c.Concurrency
	}
	if c.Rate != 0 {
		cfg.RateLimit = c.Rate
	}
	if c.Render {
		cfg.Render = true
	}
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string `short:"a" help:"Listen address (default from config)"`
	AllowSource bool   `help:"Let requests choose the page with ?source="`
}

// Configure applies the flags that were given to cfg.
func (c *ServeCmd) Configure(cfg *headlines.Config) {
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}
}
