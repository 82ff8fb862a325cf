package composer

import (
	"context"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

// Studio exposes the operations the composer needs from the application
// layer.
type Studio interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) (string, error)
	State() *logo.State
	Palette() *logo.Palette
	Readiness() *logo.Readiness
	Catalog() (*logo.Catalog, error)
}
