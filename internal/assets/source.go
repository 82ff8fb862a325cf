package assets

import (
	"fmt"
	"net/http"

	"github.com/alexisbeaulieu97/kindred/internal/config"
	"github.com/alexisbeaulieu97/kindred/internal/ports"
)

// NewFetcher builds the fetcher selected by the assets configuration.
func NewFetcher(cfg config.AssetsConfig, client *http.Client) (ports.Fetcher, error) {
	switch cfg.Source {
	case config.SourceEmbedded, "":
		return Embedded(), nil
	case config.SourceDir:
		return NewDirFetcher(cfg.Location), nil
	case config.SourceHTTP:
		return NewHTTPFetcher(cfg.Location, client)
	case config.SourceGit:
		return NewGitFetcher(cfg.Location, cfg.Ref), nil
	default:
		return nil, fmt.Errorf("unsupported asset source %q", cfg.Source)
	}
}

// ManifestFor returns the manifest described by the configuration.
func ManifestFor(cfg *config.Config) Manifest {
	return Manifest{
		Base:    cfg.Assets.Base,
		Accents: cfg.AccentNames(),
	}
}
