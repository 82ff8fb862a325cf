package ports

import "context"

// Fetcher retrieves raw shape documents by name from an asset source such as
// the embedded defaults, a local directory, an HTTP host, or a git
// repository. Names are slash-separated and relative to the source root.
//
// Implementations must respect ctx for cancellation, must be safe for
// concurrent Fetch calls, and should wrap not-found conditions so that
// errors.Is(err, fs.ErrNotExist) holds.
//
//go:generate mockgen -destination=mocks/assets_mock.go -package=mocks -source=assets.go
type Fetcher interface {
	// Fetch returns the full document stored under name.
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Describe returns a short human-readable label for logs and errors.
	Describe() string
}

// Exporter hands a finished SVG document to its destination and returns
// where it went (a file path, "-" for stdout, and so on).
type Exporter interface {
	Export(ctx context.Context, document string) (string, error)
}
