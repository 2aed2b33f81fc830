// Package models holds the plain data records of the social graph.
package models

import "slices"

// Post is a single entry of a user's feed.
type Post struct {
	Content string
}

// Profile is a user's stored identity plus their friends and feed.
//
// Friends keeps link order and may contain repeated names. Posts is in
// append order.
type Profile struct {
	Username string
	Password string
	Friends  []string
	Posts    []Post
}

// NewProfile returns an empty profile for the given credentials.
func NewProfile(username, password string) *Profile {
	return &Profile{Username: username, Password: password}
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() Profile {
	return Profile{
		Username: p.Username,
		Password: p.Password,
		Friends:  slices.Clone(p.Friends),
		Posts:    slices.Clone(p.Posts),
	}
}

// HasFriend reports whether name appears in the friend list.
func (p *Profile) HasFriend(name string) bool {
	return slices.Contains(p.Friends, name)
}
