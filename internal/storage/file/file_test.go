package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophnet/internal/codec"
	"github.com/dmitrijs2005/gophnet/internal/common"
	"github.com/dmitrijs2005/gophnet/internal/graph"
	"github.com/dmitrijs2005/gophnet/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, path string, opts ...codec.Option) *Repository {
	t.Helper()
	return NewRepository(path, codec.New(opts...), logging.Nop())
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	r := newRepo(t, filepath.Join(t.TempDir(), "socialnetwork.txt"))

	s, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "socialnetwork.txt")
	r := newRepo(t, path)

	s := graph.New()
	require.NoError(t, s.CreateUser("alice", "p1"))
	require.NoError(t, s.CreateUser("bob", "p2"))
	require.NoError(t, s.LinkFriends("alice", "bob"))
	require.NoError(t, s.AddPost("alice", "hello"))
	require.NoError(t, r.Save(ctx, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\nalice p1\n1\nbob\n1\nhello\nbob p2\n1\nalice\n0\n", string(data))

	loaded, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, loaded.Usernames())
	assert.True(t, loaded.Authenticate("alice", "p1"))
	assert.False(t, loaded.Authenticate("alice", "wrong"))
}

func TestLoad_TruncatedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "socialnetwork.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\nalice p1\n0\n0\n"), 0o600))

	s, err := newRepo(t, path).Load(context.Background())
	require.ErrorIs(t, err, common.ErrTruncatedStream)
	assert.Nil(t, s)
}

func TestLoad_UnreadablePathFails(t *testing.T) {
	// A directory cannot be decoded as a data file.
	dir := t.TempDir()
	_, err := newRepo(t, dir).Load(context.Background())
	require.Error(t, err)
}

func TestSave_UnencodableKeepsOldFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "socialnetwork.txt")
	require.NoError(t, os.WriteFile(path, []byte("0\n"), 0o600))

	s := graph.New()
	require.NoError(t, s.CreateUser("alice", "p1"))
	require.NoError(t, s.AddPost("alice", "two\nlines"))

	err := newRepo(t, path).Save(ctx, s)
	require.ErrorIs(t, err, common.ErrUnencodable)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0\n", string(data))

	require.NoError(t, newRepo(t, path, codec.WithEscaping(true)).Save(ctx, s))
	loaded, err := newRepo(t, path, codec.WithEscaping(true)).Load(ctx)
	require.NoError(t, err)
	posts, err := loaded.Posts("alice")
	require.NoError(t, err)
	assert.Equal(t, "two\nlines", posts[0].Content)
}

func TestLoad_DuplicatesTolerated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "socialnetwork.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\nalice a\n0\n0\nalice b\n0\n0\n"), 0o600))

	s, err := newRepo(t, path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Authenticate("alice", "b"))
}

func TestLoad_AppliesStoreOptions(t *testing.T) {
	r := NewRepository(filepath.Join(t.TempDir(), "n.txt"), codec.New(), logging.Nop(), graph.WithSelfLinks(false))
	s, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, s.Policy().AllowSelfLinks)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRepo(t, filepath.Join(t.TempDir(), "n.txt"))
	_, err := r.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, r.Save(ctx, graph.New()), context.Canceled)
	require.NoError(t, r.Close())
}
