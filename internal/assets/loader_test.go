package assets

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alexisbeaulieu97/kindred/internal/config"
	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
	"github.com/alexisbeaulieu97/kindred/internal/ports/mocks"
	kerrors "github.com/alexisbeaulieu97/kindred/pkg/errors"
)

func svgDoc(d string) []byte {
	return []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><path d="` + d + `"/></svg>`)
}

func TestLoader_EmbeddedDefaults(t *testing.T) {
	cfg := config.Default()
	loader := NewLoader(Embedded(), Options{Timeout: 5 * time.Second, Concurrency: 4})

	catalog, err := loader.Load(context.Background(), ManifestFor(cfg))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAccentCount, catalog.Count())
	assert.True(t, strings.HasPrefix(string(catalog.BasePath()), "M50 4"))

	seen := make(map[logo.PathData]bool)
	for i := 0; i < catalog.Count(); i++ {
		p, err := catalog.AccentPath(logo.ShapeRef(i))
		require.NoError(t, err)
		assert.False(t, seen[p], "accent %d duplicates an earlier shape", i)
		seen[p] = true
	}
}

func TestLoader_PreservesManifestOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Describe().Return("mock").AnyTimes()
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) ([]byte, error) {
		return svgDoc("M-" + name), nil
	}).Times(4)

	loader := NewLoader(fetcher, Options{Concurrency: 3})
	catalog, err := loader.Load(context.Background(), Manifest{
		Base:    "b.svg",
		Accents: []string{"z.svg", "a.svg", "m.svg"},
	})
	require.NoError(t, err)

	assert.Equal(t, logo.PathData("M-b.svg"), catalog.BasePath())
	for i, want := range []string{"M-z.svg", "M-a.svg", "M-m.svg"} {
		got, err := catalog.AccentPath(logo.ShapeRef(i))
		require.NoError(t, err)
		assert.Equal(t, logo.PathData(want), got)
	}
}

func TestLoader_FetchFailureSettlesReadiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Describe().Return("mock").AnyTimes()
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) ([]byte, error) {
		if name == "accent-1.svg" {
			return nil, errors.New("connection reset")
		}
		return svgDoc("M0"), nil
	}).AnyTimes()

	readiness := logo.NewReadiness()
	loader := NewLoader(fetcher, Options{Concurrency: 1})
	err := loader.LoadInto(context.Background(), Manifest{
		Base:    "base.svg",
		Accents: []string{"accent-0.svg", "accent-1.svg", "accent-2.svg"},
	}, readiness)

	require.Error(t, err)
	assert.True(t, logo.HasCode(err, logo.ErrCodeAssetLoad))
	var loadErr *kerrors.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "accent-1.svg", loadErr.Asset)

	assert.Equal(t, logo.Failed, readiness.Status())
	assert.Contains(t, readiness.Reason(), "connection reset")
	_, err = readiness.Catalog()
	assert.True(t, logo.HasCode(err, logo.ErrCodeAssetLoad))
}

func TestLoader_UnparseableDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Describe().Return("mock").AnyTimes()
	fetcher.EXPECT().Fetch(gomock.Any(), "base.svg").Return(svgDoc("MB"), nil).AnyTimes()
	fetcher.EXPECT().Fetch(gomock.Any(), "empty.svg").Return([]byte(`<svg><rect/></svg>`), nil).AnyTimes()

	loader := NewLoader(fetcher, Options{Concurrency: 2})
	_, err := loader.Load(context.Background(), Manifest{Base: "base.svg", Accents: []string{"empty.svg"}})

	var loadErr *kerrors.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "empty.svg", loadErr.Asset)
	assert.Contains(t, err.Error(), "extract path")
}

func TestLoader_SuccessSettlesReadiness(t *testing.T) {
	readiness := logo.NewReadiness()
	loader := NewLoader(Embedded(), Options{Concurrency: 8})

	require.NoError(t, loader.LoadInto(context.Background(), ManifestFor(config.Default()), readiness))
	assert.Equal(t, logo.Loaded, readiness.Status())

	// A settled readiness cannot be reused for a second attempt.
	err := loader.LoadInto(context.Background(), ManifestFor(config.Default()), readiness)
	assert.True(t, logo.HasCode(err, logo.ErrCodeState))
}

func TestLoader_EmptyManifest(t *testing.T) {
	loader := NewLoader(Embedded(), Options{})
	_, err := loader.Load(context.Background(), Manifest{Base: "base.svg"})
	assert.True(t, logo.HasCode(err, logo.ErrCodeConfiguration))
}

func TestLoader_RespectsConcurrencyLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Describe().Return("mock").AnyTimes()

	var inFlight, peak atomic.Int32
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string) ([]byte, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return svgDoc("M1"), nil
	}).Times(11)

	accents := make([]string, 10)
	for i := range accents {
		accents[i] = "a.svg"
	}
	loader := NewLoader(fetcher, Options{Concurrency: 2})
	_, err := loader.Load(context.Background(), Manifest{Base: "b.svg", Accents: accents})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestLoader_TimeoutCancelsFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Describe().Return("slow").AnyTimes()
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ string) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}).AnyTimes()

	loader := NewLoader(fetcher, Options{Timeout: 20 * time.Millisecond, Concurrency: 2})
	_, err := loader.Load(context.Background(), Manifest{Base: "b.svg", Accents: []string{"a.svg"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFSFetcher(t *testing.T) {
	dir := t.TempDir()
	fetcher := NewDirFetcher(dir)
	assert.Equal(t, "dir:"+dir, fetcher.Describe())

	_, err := fetcher.Fetch(context.Background(), "missing.svg")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = fetcher.Fetch(context.Background(), "../escape.svg")
	assert.ErrorIs(t, err, fs.ErrInvalid)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Embedded().Fetch(ctx, "base.svg")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFetcher(t *testing.T) {
	cfg := config.Default()

	f, err := NewFetcher(cfg.Assets, nil)
	require.NoError(t, err)
	assert.Equal(t, "embedded", f.Describe())

	cfg.Assets.Source = config.SourceDir
	cfg.Assets.Location = "/srv/shapes"
	f, err = NewFetcher(cfg.Assets, nil)
	require.NoError(t, err)
	assert.IsType(t, &FSFetcher{}, f)

	cfg.Assets.Source = config.SourceHTTP
	cfg.Assets.Location = "https://cdn.example.com/shapes"
	f, err = NewFetcher(cfg.Assets, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/shapes/", f.Describe())

	cfg.Assets.Source = config.SourceGit
	cfg.Assets.Location = "https://github.com/example/shapes.git"
	cfg.Assets.Ref = "main"
	f, err = NewFetcher(cfg.Assets, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/example/shapes.git@main", f.Describe())

	cfg.Assets.Source = "ftp"
	_, err = NewFetcher(cfg.Assets, nil)
	assert.Error(t, err)
}
