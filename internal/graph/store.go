// Package graph implements the in-memory social graph: profiles keyed by
// username, symmetric friendships and append-only feeds.
//
// A Store is not safe for concurrent use. The CLI drives it from a single
// goroutine; anything that adds concurrent callers must serialize each
// operation, since LinkFriends touches two profiles at once.
package graph

import (
	"crypto/subtle"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/gophnet/internal/common"
	"github.com/dmitrijs2005/gophnet/internal/models"
)

// Store owns every profile of the network.
type Store struct {
	users  map[string]*models.Profile
	policy LinkPolicy
}

// New returns an empty store. Without options, self links and repeated
// links between the same pair are allowed.
func New(opts ...Option) *Store {
	s := &Store{
		users:  make(map[string]*models.Profile),
		policy: DefaultLinkPolicy(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Policy returns the link policy the store was built with.
func (s *Store) Policy() LinkPolicy {
	return s.policy
}

// CreateUser inserts a new profile. It fails with ErrDuplicateUsername
// and leaves the store untouched when the name is taken.
func (s *Store) CreateUser(username, password string) error {
	if _, ok := s.users[username]; ok {
		return fmt.Errorf("create %q: %w", username, common.ErrDuplicateUsername)
	}
	s.users[username] = models.NewProfile(username, password)
	return nil
}

// LinkFriends records a friendship between a and b: b is appended to a's
// friend list and a to b's. Either both lists grow or neither does.
func (s *Store) LinkFriends(a, b string) error {
	pa, okA := s.users[a]
	pb, okB := s.users[b]
	if !okA || !okB {
		return fmt.Errorf("link %q and %q: %w", a, b, common.ErrUnknownUser)
	}
	if a == b && !s.policy.AllowSelfLinks {
		return fmt.Errorf("link %q: %w", a, common.ErrSelfLink)
	}
	if !s.policy.AllowDuplicateLinks && (pa.HasFriend(b) || pb.HasFriend(a)) {
		return fmt.Errorf("link %q and %q: %w", a, b, common.ErrAlreadyFriends)
	}

	// For a self link pa and pb are the same profile, which ends up with
	// two entries, one per side.
	pa.Friends = append(pa.Friends, b)
	pb.Friends = append(pb.Friends, a)
	return nil
}

// AddPost appends content to the user's feed.
func (s *Store) AddPost(username, content string) error {
	p, ok := s.users[username]
	if !ok {
		return fmt.Errorf("post as %q: %w", username, common.ErrUnknownUser)
	}
	p.Posts = append(p.Posts, models.Post{Content: content})
	return nil
}

// Authenticate reports whether username exists and its stored password
// equals password exactly.
func (s *Store) Authenticate(username, password string) bool {
	p, ok := s.users[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(p.Password), []byte(password)) == 1
}

// Login is Authenticate in error form. It returns ErrAuthFailure without
// telling whether the user or the password was wrong.
func (s *Store) Login(username, password string) error {
	if !s.Authenticate(username, password) {
		return common.ErrAuthFailure
	}
	return nil
}

// Usernames returns all keys in canonical (ascending) order.
func (s *Store) Usernames() []string {
	names := make([]string, 0, len(s.users))
	for name := range s.users {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Profile returns a copy of the named profile.
func (s *Store) Profile(username string) (models.Profile, bool) {
	p, ok := s.users[username]
	if !ok {
		return models.Profile{}, false
	}
	return p.Clone(), true
}

// Friends returns a copy of the user's friend list.
func (s *Store) Friends(username string) ([]string, error) {
	p, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("friends of %q: %w", username, common.ErrUnknownUser)
	}
	return slices.Clone(p.Friends), nil
}

// Posts returns a copy of the user's feed in append order.
func (s *Store) Posts(username string) ([]models.Post, error) {
	p, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("posts of %q: %w", username, common.ErrUnknownUser)
	}
	return slices.Clone(p.Posts), nil
}

// Len returns the number of profiles.
func (s *Store) Len() int {
	return len(s.users)
}

// Restore inserts p verbatim, replacing any profile with the same name.
// It is meant for loaders rebuilding a store from persisted state and
// reports whether an existing profile was overwritten.
func (s *Store) Restore(p models.Profile) (replaced bool) {
	_, replaced = s.users[p.Username]
	c := p.Clone()
	s.users[p.Username] = &c
	return replaced
}

// Each calls fn with a copy of every profile in canonical order and stops
// at the first error.
func (s *Store) Each(fn func(p models.Profile) error) error {
	for _, name := range s.Usernames() {
		if err := fn(s.users[name].Clone()); err != nil {
			return err
		}
	}
	return nil
}
