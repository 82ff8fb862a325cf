package assets

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

func newShapeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/shapes/base.svg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write(svgDoc("M0 0 H100 V100 H0 Z"))
	})
	mux.HandleFunc("/shapes/accent-a.svg", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(svgDoc("M10 10 L90 90"))
	})
	mux.HandleFunc("/shapes/broken.svg", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/shapes/huge.svg", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat(" ", MaxDocumentBytes+10)))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcher(t *testing.T) {
	srv := newShapeServer(t)

	fetcher, err := NewHTTPFetcher(srv.URL+"/shapes", srv.Client())
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/shapes/", fetcher.Describe())

	data, err := fetcher.Fetch(context.Background(), "base.svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "M0 0 H100")

	_, err = fetcher.Fetch(context.Background(), "absent.svg")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = fetcher.Fetch(context.Background(), "broken.svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")

	_, err = fetcher.Fetch(context.Background(), "huge.svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestHTTPFetcher_LoadsCatalog(t *testing.T) {
	srv := newShapeServer(t)
	fetcher, err := NewHTTPFetcher(srv.URL+"/shapes/", srv.Client())
	require.NoError(t, err)

	loader := NewLoader(fetcher, Options{Timeout: 5 * time.Second, Concurrency: 2})
	catalog, err := loader.Load(context.Background(), Manifest{Base: "base.svg", Accents: []string{"accent-a.svg"}})
	require.NoError(t, err)

	accent, err := catalog.AccentPath(0)
	require.NoError(t, err)
	assert.Equal(t, logo.PathData("M10 10 L90 90"), accent)
}

func TestNewHTTPFetcher_RejectsRelative(t *testing.T) {
	for _, base := range []string{"shapes/", "ftp://example.com/shapes", "https://"} {
		_, err := NewHTTPFetcher(base, nil)
		assert.Error(t, err, base)
	}
}

func initShapeRepo(t *testing.T, files map[string][]byte) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
		_, err = wt.Add(name)
		require.NoError(t, err)
	}

	_, err = wt.Commit("add shapes", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Kindred",
			Email: "kindred@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func TestGitFetcher(t *testing.T) {
	dir := initShapeRepo(t, map[string][]byte{
		"base.svg":   svgDoc("M1 1"),
		"accent.svg": svgDoc("M2 2"),
	})

	fetcher := NewGitFetcher(dir, "")
	assert.Equal(t, dir, fetcher.Describe())

	data, err := fetcher.Fetch(context.Background(), "accent.svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "M2 2")

	_, err = fetcher.Fetch(context.Background(), "missing.svg")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = fetcher.Fetch(context.Background(), "/etc/passwd")
	assert.ErrorIs(t, err, fs.ErrInvalid)
}

func TestGitFetcher_BranchRef(t *testing.T) {
	dir := initShapeRepo(t, map[string][]byte{
		"base.svg":     svgDoc("M5 5"),
		"accent-0.svg": svgDoc("M6 6"),
	})

	fetcher := NewGitFetcher(dir, "master")
	assert.Equal(t, dir+"@master", fetcher.Describe())

	loader := NewLoader(fetcher, Options{Concurrency: 4})
	catalog, err := loader.Load(context.Background(), Manifest{Base: "base.svg", Accents: []string{"accent-0.svg"}})
	require.NoError(t, err)
	assert.Equal(t, logo.PathData("M5 5"), catalog.BasePath())
}

func TestGitFetcher_UnknownRef(t *testing.T) {
	dir := initShapeRepo(t, map[string][]byte{"base.svg": svgDoc("M5 5")})

	fetcher := NewGitFetcher(dir, "does-not-exist")
	_, err := fetcher.Fetch(context.Background(), "base.svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clone")
}
