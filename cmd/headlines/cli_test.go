package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/headlines"
	main "github.com/fwojciec/headlines/cmd/headlines"
	"github.com/fwojciec/headlines/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDigest(source string) *headlines.Digest {
	return &headlines.Digest{
		Source: source,
		Articles: []headlines.Article{
			{
				Category: "Weather",
				Title:    "Rain returns to farms",
				Summary:  "Farmers cheer as rain returns",
				URL:      "https://example.com/rain",
				Image:    "https://example.com/rain.jpg",
			},
		},
		Keywords: headlines.KeywordTable{{Word: "rain", Count: 2}, {Word: "farms", Count: 1}},
		Metrics:  headlines.Metrics{MostCommonCategory: "Weather", AvgHeadlineLength: 4},
		Meta: headlines.Meta{
			RunID:         "run-1",
			GeneratedAt:   "04/03/2026 05:06:07",
			ExecutionTime: "0.125s",
		},
	}
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"digest", "batch", "serve"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestDigestCmd_Configure(t *testing.T) {
	t.Parallel()

	t.Run("keeps config values when no flags are given", func(t *testing.T) {
		t.Parallel()

		cfg := headlines.DefaultConfig()
		cmd := &main.DigestCmd{}
		cmd.Configure(&cfg)

		assert.Equal(t, headlines.DefaultConfig(), cfg)
	})

	t.Run("overrides config values with given flags", func(t *testing.T) {
		t.Parallel()

		cfg := headlines.DefaultConfig()
		cmd := &main.DigestCmd{
			Source:  "https://example.com/",
			Limit:   3,
			Render:  true,
			Timeout: 30 * time.Second,
		}
		cmd.Configure(&cfg)

		assert.Equal(t, "https://example.com/", cfg.Source)
		assert.Equal(t, 3, cfg.KeywordLimit)
		assert.True(t, cfg.Render)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})
}

func TestBatchCmd_Configure(t *testing.T) {
	t.Parallel()

	cfg := headlines.DefaultConfig()
	cfg.Sources = []string{"https://from-config.example.com/"}
	cmd := &main.BatchCmd{
		URLs:        []string{"https://a.example.com/", "https://b.example.com/"},
		Concurrency: 5,
		Rate:        2.5,
	}
	cmd.Configure(&cfg)

	assert.Equal(t, []string{"https://a.example.com/", "https://b.example.com/"}, cfg.Sources)
	assert.Equal(t, 5, cfg.Concurrency)
	assert.InDelta(t, 2.5, cfg.RateLimit, 1e-9)
}

func TestDigestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes digest as JSON", func(t *testing.T) {
		t.Parallel()

		var gotSource string
		var gotLimit int
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: headlines.Config{Source: "https://example.com/", KeywordLimit: 7},
			Digester: &mock.Digester{
				DigestFn: func(_ context.Context, source string, limit int) (*headlines.Digest, error) {
					gotSource, gotLimit = source, limit
					return sampleDigest(source), nil
				},
			},
		}

		cmd := &main.DigestCmd{Format: "json"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "https://example.com/", gotSource)
		assert.Equal(t, 7, gotLimit)

		var got headlines.Digest
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, *sampleDigest("https://example.com/"), got)
	})

	t.Run("writes digest as aligned text", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: headlines.Config{Source: "https://example.com/", KeywordLimit: 10},
			Digester: &mock.Digester{
				DigestFn: func(_ context.Context, source string, _ int) (*headlines.Digest, error) {
					return sampleDigest(source), nil
				},
			},
		}

		cmd := &main.DigestCmd{Format: "text"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Source: https://example.com/")
		assert.Contains(t, output, "  1. [Weather] Rain returns to farms")
		assert.Contains(t, output, "| Keyword | Count |")
		assert.Contains(t, output, "| ------- | ----- |")
		assert.Contains(t, output, "| rain    | 2     |")
		assert.Contains(t, output, "| farms   | 1     |")
		assert.Contains(t, output, "| Most common category    | Weather   |")
		assert.Contains(t, output, "| Average headline length | 4.0 words |")
	})

	t.Run("pads wide characters by display width", func(t *testing.T) {
		t.Parallel()

		d := sampleDigest("https://example.com/")
		d.Keywords = headlines.KeywordTable{{Word: "東京", Count: 1}, {Word: "rain", Count: 1}}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: headlines.Config{Source: "https://example.com/"},
			Digester: &mock.Digester{
				DigestFn: func(_ context.Context, _ string, _ int) (*headlines.Digest, error) {
					return d, nil
				},
			},
		}

		cmd := &main.DigestCmd{Format: "text"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "| 東京    | 1     |")
		assert.Contains(t, output, "| rain    | 1     |")
	})

	t.Run("returns error when digest fails", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Config: headlines.DefaultConfig(),
			Digester: &mock.Digester{
				DigestFn: func(_ context.Context, _ string, _ int) (*headlines.Digest, error) {
					return nil, headlines.Errorf(headlines.EINVALID, "articles cannot be empty")
				},
			},
		}

		cmd := &main.DigestCmd{Format: "json"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, headlines.EINVALID, headlines.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: articles cannot be empty")
	})
}

func TestBatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes one result per source", func(t *testing.T) {
		t.Parallel()

		cfg := headlines.DefaultConfig()
		cfg.Sources = []string{"https://a.example.com/", "https://b.example.com/"}
		cfg.RateLimit = 0

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: cfg,
			Digester: &mock.Digester{
				DigestFn: func(_ context.Context, source string, _ int) (*headlines.Digest, error) {
					return sampleDigest(source), nil
				},
			},
		}

		cmd := &main.BatchCmd{}
		require.NoError(t, cmd.Run(deps))

		var results []struct {
			Source string            `json:"source"`
			Digest *headlines.Digest `json:"digest"`
			Error  string            `json:"error"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
		require.Len(t, results, 2)
		assert.Equal(t, "https://a.example.com/", results[0].Source)
		assert.Equal(t, "https://b.example.com/", results[1].Source)
		assert.NotNil(t, results[0].Digest)
		assert.Empty(t, results[1].Error)
	})

	t.Run("reports failed sources and returns error", func(t *testing.T) {
		t.Parallel()

		cfg := headlines.DefaultConfig()
		cfg.Sources = []string{"https://ok.example.com/", "https://bad.example.com/"}
		cfg.RateLimit = 0

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Config: cfg,
			Digester: &mock.Digester{
				DigestFn: func(_ context.Context, source string, _ int) (*headlines.Digest, error) {
					if source == "https://bad.example.com/" {
						return nil, errors.New("connection refused")
					}
					return sampleDigest(source), nil
				},
			},
		}

		cmd := &main.BatchCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 sources failed")
		assert.Contains(t, stderr.String(), "error: https://bad.example.com/: connection refused")
		assert.Contains(t, stdout.String(), `"error": "connection refused"`)
	})

	t.Run("returns error when there are no sources", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Config:   headlines.DefaultConfig(),
			Digester: &mock.Digester{},
		}

		cmd := &main.BatchCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, headlines.EINVALID, headlines.ErrorCode(err))
	})
}
