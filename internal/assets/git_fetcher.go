package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/alexisbeaulieu97/kindred/internal/ports"
)

// GitFetcher reads shape documents from a git repository cloned into memory
// on first use. The clone is shared by all subsequent fetches.
type GitFetcher struct {
	url string
	ref string

	mu       sync.Mutex
	worktree billy.Filesystem
}

var _ ports.Fetcher = (*GitFetcher)(nil)

// NewGitFetcher targets url; an empty ref clones the remote HEAD.
func NewGitFetcher(url, ref string) *GitFetcher {
	return &GitFetcher{url: url, ref: ref}
}

func (g *GitFetcher) cloneOptions() *git.CloneOptions {
	opts := &git.CloneOptions{
		URL:  g.url,
		Tags: git.NoTags,
	}
	// Local paths are cloned in full.
	if !isLocalPath(g.url) {
		opts.Depth = 1
	}
	if g.ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(g.ref)
		opts.SingleBranch = true
	}
	return opts
}

func (g *GitFetcher) checkout(ctx context.Context) (billy.Filesystem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.worktree != nil {
		return g.worktree, nil
	}

	repo, err := git.CloneContext(ctx, memory.NewStorage(), memfs.New(), g.cloneOptions())
	if err != nil {
		return nil, fmt.Errorf("clone %s: %w", g.url, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	g.worktree = wt.Filesystem
	return g.worktree, nil
}

func (g *GitFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "fetch", Path: name, Err: fs.ErrInvalid}
	}

	worktree, err := g.checkout(ctx)
	if err != nil {
		return nil, err
	}

	f, err := worktree.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", name, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) > MaxDocumentBytes {
		return nil, fmt.Errorf("read %s: document exceeds %d bytes", name, MaxDocumentBytes)
	}
	return data, nil
}

func (g *GitFetcher) Describe() string {
	if g.ref != "" {
		return g.url + "@" + g.ref
	}
	return g.url
}

func isLocalPath(location string) bool {
	return strings.HasPrefix(location, "/") ||
		strings.HasPrefix(location, "./") ||
		strings.HasPrefix(location, "../") ||
		strings.HasPrefix(location, "file://")
}
