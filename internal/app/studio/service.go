// Package studio coordinates the composer: it owns the palette, the catalog
// readiness, the composition state and the export collaborator, and exposes
// them to the CLI and the TUI.
package studio

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/alexisbeaulieu97/kindred/internal/assets"
	"github.com/alexisbeaulieu97/kindred/internal/config"
	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
	"github.com/alexisbeaulieu97/kindred/internal/ports"
	"github.com/alexisbeaulieu97/kindred/internal/svg"
)

// Options configures a Service.
type Options struct {
	Palette  *logo.Palette
	Loader   *assets.Loader
	Manifest assets.Manifest
	Exporter ports.Exporter
	Random   logo.RandomSource
	Seed     int64
	Logger   ports.Logger
}

// Service binds the composition state to its catalog and export collaborators.
type Service struct {
	loader   *assets.Loader
	manifest assets.Manifest
	exporter ports.Exporter
	logger   ports.Logger
	seed     int64

	loads     singleflight.Group
	mu        sync.Mutex
	readiness *logo.Readiness
	state     *logo.State
}

var _ logo.CatalogProvider = (*Service)(nil)

// New creates a Service. The catalog starts NotLoaded; call Load to fetch it.
func New(opts Options) (*Service, error) {
	if opts.Loader == nil {
		return nil, logo.NewConfigurationError("asset loader is required", nil)
	}
	if opts.Random == nil {
		opts.Random = logo.NewRandomSource(opts.Seed)
	}
	logger := opts.Logger
	if logger == nil {
		logger = ports.NopLogger{}
	}

	s := &Service{
		loader:    opts.Loader,
		manifest:  opts.Manifest,
		exporter:  opts.Exporter,
		logger:    logger,
		seed:      opts.Seed,
		readiness: logo.NewReadiness(),
	}

	state, err := logo.NewState(opts.Palette, s, opts.Random)
	if err != nil {
		return nil, err
	}
	s.state = state
	return s, nil
}

// NewFromConfig wires a Service from the effective configuration. A nil seed
// in cfg draws one from the system entropy source.
func NewFromConfig(cfg *config.Config, logger ports.Logger, exporter ports.Exporter) (*Service, error) {
	palette, err := cfg.BuildPalette()
	if err != nil {
		return nil, err
	}

	fetcher, err := assets.NewFetcher(cfg.Assets, &http.Client{})
	if err != nil {
		return nil, logo.NewConfigurationError(err.Error(), map[string]interface{}{"source": cfg.Assets.Source})
	}

	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else if seed, err = logo.NewSeed(); err != nil {
		return nil, fmt.Errorf("draw seed: %w", err)
	}

	if logger == nil {
		logger = ports.NopLogger{}
	}
	loader := assets.NewLoader(fetcher, assets.Options{
		Timeout:     cfg.Assets.Timeout,
		Concurrency: cfg.Assets.Concurrency,
		Logger:      logger.With("component", "assets"),
	})

	return New(Options{
		Palette:  palette,
		Loader:   loader,
		Manifest: assets.ManifestFor(cfg),
		Exporter: exporter,
		Seed:     seed,
		Logger:   logger,
	})
}

// Load fetches the catalog. It is a no-op once a catalog is loaded; after a
// failed attempt it starts over with a fresh readiness. Concurrent callers
// share the attempt in flight and all receive its outcome.
func (s *Service) Load(ctx context.Context) error {
	_, err, _ := s.loads.Do("catalog", func() (interface{}, error) {
		return nil, s.load(ctx)
	})
	return err
}

func (s *Service) load(ctx context.Context) error {
	readiness := s.beginLoad()
	if readiness == nil {
		return nil
	}

	s.logger.Info(ctx, "loading assets", "accents", len(s.manifest.Accents))
	if err := s.loader.LoadInto(ctx, s.manifest, readiness); err != nil {
		s.logger.Error(ctx, "assets unavailable", "error", err)
		return err
	}
	return nil
}

func (s *Service) beginLoad() *logo.Readiness {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.readiness.Status() {
	case logo.Loaded:
		return nil
	case logo.Failed:
		s.readiness = logo.NewReadiness()
	}
	return s.readiness
}

// Catalog implements logo.CatalogProvider over the current readiness.
func (s *Service) Catalog() (*logo.Catalog, error) {
	return s.Readiness().Catalog()
}

// Readiness returns the current load outcome.
func (s *Service) Readiness() *logo.Readiness {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readiness
}

// State returns the composition state driven by user intents.
func (s *Service) State() *logo.State {
	return s.state
}

// Palette returns the fixed palette.
func (s *Service) Palette() *logo.Palette {
	return s.state.Palette()
}

// Seed reports the seed of the random source when it was built from one.
func (s *Service) Seed() int64 {
	return s.seed
}

// Export serializes the current composition.
func (s *Service) Export() (string, error) {
	return svg.Render(s.state)
}

// Save serializes the current composition and hands it to the exporter,
// returning the location written.
func (s *Service) Save(ctx context.Context) (string, error) {
	if s.exporter == nil {
		return "", logo.NewConfigurationError("no exporter configured", nil)
	}

	document, err := s.Export()
	if err != nil {
		return "", err
	}

	location, err := s.exporter.Export(ctx, document)
	if err != nil {
		s.logger.Error(ctx, "export failed", "error", err)
		return "", fmt.Errorf("export logo: %w", err)
	}

	snap := s.state.Snapshot()
	s.logger.Info(ctx, "logo saved",
		"location", location,
		"base_color", string(snap.BaseColor),
		"accent_color", string(snap.AccentColor),
		"shape", int(snap.AccentIndex),
	)
	return location, nil
}

// ComposeRequest describes a composition to apply in one call.
type ComposeRequest struct {
	Random      bool
	BaseColor   logo.Color
	AccentColor logo.Color
	Shape       *logo.ShapeRef
}

// Compose applies req through the regular transitions: randomize first when
// requested, then the base color, the accent color and the shape. The first
// rejected transition stops the sequence.
func (s *Service) Compose(req ComposeRequest) (logo.Composition, error) {
	if req.Random {
		if err := s.state.Randomize(); err != nil {
			return s.state.Snapshot(), err
		}
	}
	if req.BaseColor != "" {
		if err := s.state.SetBaseColor(req.BaseColor); err != nil {
			return s.state.Snapshot(), err
		}
	}
	if req.AccentColor != "" {
		if err := s.state.SetAccentColor(req.AccentColor); err != nil {
			return s.state.Snapshot(), err
		}
	}
	if req.Shape != nil {
		if err := s.state.SelectShape(*req.Shape); err != nil {
			return s.state.Snapshot(), err
		}
	}
	return s.state.Snapshot(), nil
}
