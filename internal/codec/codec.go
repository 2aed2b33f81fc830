// Package codec converts a graph.Store to and from its line-oriented text
// representation.
//
// # Format
//
//	<userCount>
//	<username> <password>
//	<friendCount>
//	<friend_1>
//	...
//	<postCount>
//	<post_1 content>
//	...
//
// The record group after the count line repeats userCount times, in
// ascending username order. Username and password are whitespace
// separated tokens on one line; friends and posts occupy one full line
// each. Counts are decimal integers on their own line.
//
// # Escaped content
//
// The legacy format cannot carry a post that contains a line break, so
// Encode refuses such content. With WithEscaping(true) post lines are
// written with backslash escapes (\\, \n, \r) and any content round-trips.
// Files do not record which variant wrote them: both sides must agree.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/gophnet/internal/common"
	"github.com/dmitrijs2005/gophnet/internal/graph"
	"github.com/dmitrijs2005/gophnet/internal/models"
)

// Codec encodes and decodes stores. The zero value uses the legacy format.
type Codec struct {
	escape bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithEscaping switches post lines to the escaped representation.
func WithEscaping(on bool) Option {
	return func(c *Codec) { c.escape = on }
}

// New returns a Codec configured by opts.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Escaping reports whether post lines are escaped.
func (c *Codec) Escaping() bool {
	return c.escape
}

// Encode writes s to w. Every profile is checked before the first byte is
// written, so a value the format cannot represent yields ErrUnencodable
// and an untouched w.
func (c *Codec) Encode(w io.Writer, s *graph.Store) error {
	if err := s.Each(c.check); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	writeLine := func(line string) {
		// bufio.Writer keeps the first error; it is reported by Flush.
		_, _ = bw.WriteString(line)
		_ = bw.WriteByte('\n')
	}

	writeLine(strconv.Itoa(s.Len()))
	_ = s.Each(func(p models.Profile) error {
		writeLine(p.Username + " " + p.Password)
		writeLine(strconv.Itoa(len(p.Friends)))
		for _, f := range p.Friends {
			writeLine(f)
		}
		writeLine(strconv.Itoa(len(p.Posts)))
		for _, post := range p.Posts {
			writeLine(c.encodeContent(post.Content))
		}
		return nil
	})

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write stream: %w", err)
	}
	return nil
}

func (c *Codec) check(p models.Profile) error {
	if p.Username == "" || strings.ContainsFunc(p.Username, unicode.IsSpace) {
		return fmt.Errorf("username %q: %w", p.Username, common.ErrUnencodable)
	}
	if strings.ContainsFunc(p.Password, unicode.IsSpace) {
		return fmt.Errorf("password of %q contains whitespace: %w", p.Username, common.ErrUnencodable)
	}
	for _, f := range p.Friends {
		if strings.ContainsAny(f, "\r\n") {
			return fmt.Errorf("friend %q of %q: %w", f, p.Username, common.ErrUnencodable)
		}
	}
	if !c.escape {
		for i, post := range p.Posts {
			if strings.ContainsAny(post.Content, "\r\n") {
				return fmt.Errorf("post %d of %q contains a line break: %w", i+1, p.Username, common.ErrUnencodable)
			}
		}
	}
	return nil
}

func (c *Codec) encodeContent(s string) string {
	if !c.escape {
		return s
	}
	return escaper.Replace(s)
}

func (c *Codec) decodeContent(s string) (string, error) {
	if !c.escape {
		return s, nil
	}
	return unescape(s)
}
