package declfile

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/zjrosen/knowncmd/internal/cachemanager"
	"github.com/zjrosen/knowncmd/internal/signature"
)

// DefaultParseCacheTTL bounds how long a parsed file is reused.
const DefaultParseCacheTTL = 30 * time.Minute

type parseInput struct {
	fsys fs.FS
	path string
}

// CachedParser parses declaration files and reuses the result while a
// file's size and modification time are unchanged. The watcher reloads
// every directory on each change, so unchanged files are served from cache.
type CachedParser struct {
	cache *cachemanager.ReadThroughCache[string, []*signature.Signature, parseInput]
	ttl   time.Duration
}

// NewCachedParser creates a parser backed by cache.
func NewCachedParser(cache cachemanager.CacheManager[string, []*signature.Signature], ttl time.Duration) *CachedParser {
	if ttl <= 0 {
		ttl = DefaultParseCacheTTL
	}
	return &CachedParser{
		cache: cachemanager.NewReadThroughCache(cache, parseFile, false),
		ttl:   ttl,
	}
}

func parseFile(_ context.Context, in parseInput) ([]*signature.Signature, error) {
	content, err := fs.ReadFile(in.fsys, in.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", in.path, err)
	}
	return Parse(in.path, content)
}

// Parse returns the signatures declared by the file at p in fsys. name
// identifies the file across file systems and is part of the cache key.
// Files that fail to parse are not cached.
func (c *CachedParser) Parse(ctx context.Context, fsys fs.FS, p, name string) ([]*signature.Signature, error) {
	info, err := fs.Stat(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}
	key := fmt.Sprintf("%s|%d|%d", name, info.Size(), info.ModTime().UnixNano())
	return c.cache.Get(ctx, key, parseInput{fsys: fsys, path: p}, c.ttl)
}
