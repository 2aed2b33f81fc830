package graph

// LinkPolicy controls which friendships LinkFriends accepts.
type LinkPolicy struct {
	// AllowSelfLinks permits LinkFriends(a, a).
	AllowSelfLinks bool
	// AllowDuplicateLinks permits linking a pair that is already linked,
	// which adds a second entry on both sides.
	AllowDuplicateLinks bool
}

// DefaultLinkPolicy allows both self links and repeated links.
func DefaultLinkPolicy() LinkPolicy {
	return LinkPolicy{AllowSelfLinks: true, AllowDuplicateLinks: true}
}

// Option configures a Store.
type Option func(*Store)

// WithSelfLinks sets whether a user may befriend themselves.
func WithSelfLinks(allow bool) Option {
	return func(s *Store) { s.policy.AllowSelfLinks = allow }
}

// WithDuplicateLinks sets whether an existing pair may be linked again.
func WithDuplicateLinks(allow bool) Option {
	return func(s *Store) { s.policy.AllowDuplicateLinks = allow }
}

// WithLinkPolicy replaces the whole policy.
func WithLinkPolicy(p LinkPolicy) Option {
	return func(s *Store) { s.policy = p }
}
