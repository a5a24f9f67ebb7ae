package headlines

import "context"

// Digest is the result of one pipeline run over a single page.
type Digest struct {
	Source   string       `json:"source"`
	Articles []Article    `json:"articles"`
	Keywords KeywordTable `json:"keywords"`
	Metrics  Metrics      `json:"metrics"`
	Meta     Meta         `json:"meta"`
}

// Meta describes how a digest was produced.
type Meta struct {
	RunID         string `json:"run_id"`
	GeneratedAt   string `json:"generated_at"`
	ExecutionTime string `json:"execution_time"`
	ContentHash   string `json:"content_hash"`
	DocumentBytes int    `json:"document_bytes"`
	MemoryUsage   string `json:"memory_usage"`
}

// GeneratedAtLayout is the time layout of Meta.GeneratedAt.
const GeneratedAtLayout = "02/01/2006 15:04:05"

// Digester produces a digest for a page.
type Digester interface {
	// Digest fetches source and runs extraction and analysis over it,
	// keeping the limit most frequent keywords. A run either completes
	// or fails as a whole.
	Digest(ctx context.Context, source string, limit int) (*Digest, error)
}
