// Package assets resolves and fetches shape documents and turns them into a
// logo catalog. It is the only asynchronous boundary of the composer: callers
// observe its outcome through a logo.Readiness.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
	"github.com/alexisbeaulieu97/kindred/internal/ports"
	"github.com/alexisbeaulieu97/kindred/internal/svg"
	kerrors "github.com/alexisbeaulieu97/kindred/pkg/errors"
)

// Manifest names the documents that make up a catalog.
type Manifest struct {
	Base    string
	Accents []string
}

// Options configures a Loader.
type Options struct {
	Timeout     time.Duration
	Concurrency int
	Logger      ports.Logger
}

// Loader fetches every document in a Manifest and extracts its path data.
type Loader struct {
	fetcher     ports.Fetcher
	timeout     time.Duration
	concurrency int
	logger      ports.Logger
}

// NewLoader creates a Loader over fetcher.
func NewLoader(fetcher ports.Fetcher, opts Options) *Loader {
	logger := opts.Logger
	if logger == nil {
		logger = ports.NopLogger{}
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Loader{
		fetcher:     fetcher,
		timeout:     opts.Timeout,
		concurrency: concurrency,
		logger:      logger.With("source", fetcher.Describe()),
	}
}

// Load fetches the base and every accent concurrently. The first failure
// cancels the remaining fetches and is returned; there is no retry.
func (l *Loader) Load(ctx context.Context, m Manifest) (*logo.Catalog, error) {
	if len(m.Accents) == 0 {
		return nil, logo.NewConfigurationError("manifest lists no accent shapes", nil)
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	started := time.Now()
	l.logger.Debug(ctx, "loading shape catalog", "accents", len(m.Accents))

	var base logo.PathData
	accents := make([]logo.PathData, len(m.Accents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	g.Go(func() error {
		d, err := l.fetchPath(gctx, m.Base)
		base = d
		return err
	})
	for i, name := range m.Accents {
		g.Go(func() error {
			d, err := l.fetchPath(gctx, name)
			accents[i] = d
			return err
		})
	}

	if err := g.Wait(); err != nil {
		l.logger.Error(ctx, "shape catalog load failed", "error", err)
		return nil, err
	}

	catalog, err := logo.NewCatalog(base, accents)
	if err != nil {
		return nil, err
	}

	l.logger.Info(ctx, "shape catalog loaded",
		"accents", catalog.Count(),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return catalog, nil
}

// LoadInto runs Load and settles readiness with the outcome.
func (l *Loader) LoadInto(ctx context.Context, m Manifest, readiness *logo.Readiness) error {
	catalog, err := l.Load(ctx, m)
	if err != nil {
		if markErr := readiness.MarkFailed(err.Error()); markErr != nil {
			return markErr
		}
		return logo.NewAssetLoadError(err.Error(), err)
	}
	return readiness.MarkLoaded(catalog)
}

func (l *Loader) fetchPath(ctx context.Context, name string) (logo.PathData, error) {
	data, err := l.fetcher.Fetch(ctx, name)
	if err != nil {
		return "", kerrors.NewLoadError(name, l.fetcher.Describe(), err)
	}
	d, err := svg.ExtractPath(bytes.NewReader(data))
	if err != nil {
		return "", kerrors.NewLoadError(name, l.fetcher.Describe(), fmt.Errorf("extract path: %w", err))
	}
	l.logger.Debug(ctx, "asset fetched", "asset", name, "bytes", len(data))
	return d, nil
}
