// Package bootstrap implements the one-time startup sequence: it
// resolves the LLM provider and credentials, selects a default model,
// and prepares interactive-session state.
//
// The sequence runs at most once per Bootstrapper. Ordering inside Init
// is load-bearing: credentials are exported into the environment before
// the history session exists, which guarantees no secret value can ever
// be recorded into interactive history.
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/quocvuong92/chat-cli/internal/config"
	"github.com/quocvuong92/chat-cli/internal/history"
	"github.com/quocvuong92/chat-cli/internal/llm"
	"github.com/quocvuong92/chat-cli/internal/logging"
	"github.com/quocvuong92/chat-cli/internal/provider"
	"github.com/quocvuong92/chat-cli/internal/tools"
)

// ErrNoProvider is returned when the full provider resolution chain is
// exhausted without a result.
var ErrNoProvider = errors.New("no provider could be determined")

// Options are the caller-supplied bootstrap parameters.
type Options struct {
	// Provider, when non-empty, wins over every other resolution source.
	Provider provider.Provider
	// Model, when non-empty, wins over config and built-in defaults.
	Model string
	// Interactive enables the credential prompt fallback and history setup.
	Interactive bool
}

// Result holds the state produced by a successful bootstrap.
type Result struct {
	Provider provider.Provider
	Model    string
	// History is the open history session; nil unless interactive. The
	// caller owns it and must Close it on normal exit to flush entries.
	History *history.Session
}

// Bootstrapper runs the startup sequence at most once. Construct with
// New; the zero value is not usable.
type Bootstrapper struct {
	cfg      *config.Store
	in       io.Reader
	out      io.Writer
	histPath string

	done   bool
	result *Result
}

// Option customizes a Bootstrapper, mainly for tests.
type Option func(*Bootstrapper)

// WithInput overrides the reader used for the credential prompt.
func WithInput(r io.Reader) Option {
	return func(b *Bootstrapper) { b.in = r }
}

// WithOutput overrides the writer used for console status lines.
func WithOutput(w io.Writer) Option {
	return func(b *Bootstrapper) { b.out = w }
}

// WithHistoryPath overrides the history file location.
func WithHistoryPath(path string) Option {
	return func(b *Bootstrapper) { b.histPath = path }
}

// New creates a Bootstrapper backed by the given config store.
func New(cfg *config.Store, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		cfg: cfg,
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init runs the bootstrap sequence: resolve provider, export
// credentials, select model, open history (interactive only), and
// initialize the tool registry.
//
// Calling Init again after a successful run logs a warning and returns
// the original result with zero additional side effects. A failed run
// does not mark the Bootstrapper done, so startup errors are retryable.
func (b *Bootstrapper) Init(opts Options) (*Result, error) {
	if b.done {
		logging.Warn("bootstrap already completed, ignoring repeated init")
		return b.result, nil
	}

	logging.Debug("bootstrap started")

	p, err := b.resolveProvider(opts.Provider, opts.Interactive)
	if err != nil {
		return nil, err
	}

	// Credentials must be in place before the history session exists,
	// so no secret can end up recorded in interactive history.
	if err := llm.Setup(p, b.cfg); err != nil {
		return nil, fmt.Errorf("credential setup failed: %w", err)
	}

	res := &Result{
		Provider: p,
		Model:    b.selectModel(opts.Model, p),
	}

	if opts.Interactive {
		path := b.histPath
		if path == "" {
			path, err = history.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
		sess, err := history.Open(path)
		if err != nil {
			return nil, err
		}
		res.History = sess
	}

	if err := tools.Init(); err != nil {
		return nil, fmt.Errorf("tool initialization failed: %w", err)
	}

	b.done = true
	b.result = res

	logging.Debug("bootstrap complete", logging.Fields{
		"provider": res.Provider,
		"model":    res.Model,
	})
	return res, nil
}

// Done reports whether a bootstrap has completed successfully.
func (b *Bootstrapper) Done() bool {
	return b.done
}
