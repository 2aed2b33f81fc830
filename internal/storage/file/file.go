// Package file persists the network as a flat text file using the codec.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/gophnet/internal/codec"
	"github.com/dmitrijs2005/gophnet/internal/filex"
	"github.com/dmitrijs2005/gophnet/internal/graph"
	"github.com/dmitrijs2005/gophnet/internal/logging"
)

// Repository loads and saves a store at a fixed path.
type Repository struct {
	path  string
	codec *codec.Codec
	opts  []graph.Option
	log   logging.Logger
}

// NewRepository returns a Repository for path. Stores it loads are built
// with opts.
func NewRepository(path string, c *codec.Codec, log logging.Logger, opts ...graph.Option) *Repository {
	return &Repository{
		path:  path,
		codec: c,
		opts:  opts,
		log:   log.With("backend", "file", "path", path),
	}
}

// Load reads the whole file. A missing file yields an empty store; any
// other open, read or decode failure is returned as is.
func (r *Repository) Load(ctx context.Context) (*graph.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.log.Info(ctx, "data file not found, starting with an empty network")
		return graph.New(r.opts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	s, rep, err := r.codec.Decode(f, r.opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.path, err)
	}
	if len(rep.Duplicates) > 0 {
		r.log.Warn(ctx, "duplicate usernames in data file, last record kept", "usernames", rep.Duplicates)
	}
	r.log.Info(ctx, "network loaded", "users", s.Len())
	return s, nil
}

// Save replaces the file with the encoded store. On failure the previous
// file is left intact.
func (r *Repository) Save(ctx context.Context, s *graph.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := filex.WriteAtomic(r.path, 0o600, func(w io.Writer) error {
		return r.codec.Encode(w, s)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", r.path, err)
	}
	r.log.Info(ctx, "network saved", "users", s.Len())
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (r *Repository) Close() error {
	return nil
}
