package patternstore

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a Store with an lz4-compressed on-disk cache.
// Intended for remote backends: a pattern is fetched once, compressed at
// rest, and served from disk afterwards. Concurrent fetches of the same
// pattern are deduplicated.
type CachingStore struct {
	inner Store
	dir   string
	group singleflight.Group
}

// NewCachingStore creates a CachingStore caching into dir, which is
// created if missing.
func NewCachingStore(inner Store, dir string) (*CachingStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &CachingStore{inner: inner, dir: dir}, nil
}

func (s *CachingStore) cachePath(name string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return filepath.Join(s.dir, fmt.Sprintf("%016x.lz4", h.Sum64()))
}

// Open serves the pattern from the cache, fetching and filling it on miss.
func (s *CachingStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	path := s.cachePath(name)

	if f, err := os.Open(path); err == nil {
		return &lz4File{f: f, zr: lz4.NewReader(f)}, nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		return s.fill(ctx, name, path)
	})
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(v.([]byte))), nil
}

// fill fetches from the inner store and writes the compressed cache entry
// atomically (temp file + rename) so readers never observe a torn entry.
func (s *CachingStore) fill(ctx context.Context, name, path string) ([]byte, error) {
	// Re-check under the singleflight lock: a racing caller may have filled
	// the entry between our disk miss and this call.
	if f, err := os.Open(path); err == nil {
		defer f.Close()
		return io.ReadAll(lz4.NewReader(f))
	}

	rc, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(s.dir, "fill-*.tmp")
	if err != nil {
		return nil, err
	}
	zw := lz4.NewWriter(tmp)
	if _, err := zw.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}

	return data, nil
}

// List delegates to the inner store; listings are not cached.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

type lz4File struct {
	f  *os.File
	zr *lz4.Reader
}

func (l *lz4File) Read(p []byte) (int, error) { return l.zr.Read(p) }
func (l *lz4File) Close() error               { return l.f.Close() }
