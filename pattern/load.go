package pattern

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/hupe1980/golife/patternstore"
)

// Load fetches a pattern from the store and parses it. Built-in pattern
// names are resolved without touching the store, so the built-ins work
// even with a nil store.
func Load(ctx context.Context, store patternstore.Store, name string) (*Pattern, error) {
	if p, ok := Builtins[name]; ok {
		return p, nil
	}
	if store == nil {
		return nil, patternstore.ErrNotFound
	}

	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Parse(displayName(name), rc)
}

// LoadAll parses every pattern in the store under the given prefix.
// Unparseable entries abort the load; the error names the entry.
func LoadAll(ctx context.Context, store patternstore.Store, prefix string) ([]*Pattern, error) {
	names, err := store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	patterns := make([]*Pattern, 0, len(names))
	for _, name := range names {
		p, err := Load(ctx, store, name)
		if err != nil {
			return nil, errors.Join(errors.New("pattern "+name), err)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// displayName strips directories and known extensions from a store key.
func displayName(key string) string {
	name := path.Base(key)
	for _, ext := range []string{".gz", ".rle", ".cells", ".txt"} {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
