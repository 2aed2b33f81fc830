package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophnet/internal/common"
	"github.com/dmitrijs2005/gophnet/internal/graph"
	"github.com/dmitrijs2005/gophnet/internal/models"
)

// Report describes a successful decode.
type Report struct {
	// Users is the declared user count.
	Users int
	// Duplicates lists usernames that appeared more than once; the last
	// record for each one was kept.
	Duplicates []string
}

// LineError locates a decode failure. It unwraps to ErrTruncatedStream
// or ErrMalformedStream.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Decode reads a complete stream into a new store built with opts.
func (c *Codec) Decode(r io.Reader, opts ...graph.Option) (*graph.Store, Report, error) {
	s := graph.New(opts...)
	rep, err := c.DecodeInto(r, s)
	if err != nil {
		return nil, Report{}, err
	}
	return s, rep, nil
}

// DecodeInto reads a complete stream and restores every record into s.
// Nothing is written to s unless the whole stream decodes.
func (c *Codec) DecodeInto(r io.Reader, s *graph.Store) (Report, error) {
	d := &decoder{r: bufio.NewReader(r), c: c}

	profiles, err := d.decode()
	if err != nil {
		return Report{}, err
	}

	rep := Report{Users: len(profiles)}
	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if seen[p.Username] {
			rep.Duplicates = append(rep.Duplicates, p.Username)
		}
		seen[p.Username] = true
	}
	for _, p := range profiles {
		s.Restore(p)
	}
	return rep, nil
}

type decoder struct {
	r    *bufio.Reader
	c    *Codec
	line int
}

func (d *decoder) decode() ([]models.Profile, error) {
	n, empty, err := d.userCount()
	if err != nil || empty {
		return nil, err
	}

	profiles := make([]models.Profile, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		p, err := d.profile(i + 1)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	if err := d.trailer(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// userCount reads the leading count. A stream holding nothing but blank
// lines is an empty network.
func (d *decoder) userCount() (n int, empty bool, err error) {
	for {
		line, err := d.next()
		if errors.Is(err, io.EOF) {
			return 0, true, nil
		}
		if err != nil {
			return 0, false, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		count, err := d.parseCount(line, "user count")
		return count, false, err
	}
}

func (d *decoder) profile(idx int) (models.Profile, error) {
	var p models.Profile

	line, err := d.need(fmt.Sprintf("identity of user %d", idx))
	if err != nil {
		return p, err
	}
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		p.Username = fields[0]
	case 2:
		p.Username, p.Password = fields[0], fields[1]
	default:
		return p, d.malformed("expected \"<username> <password>\", got %d fields", len(fields))
	}

	friends, err := d.list(p.Username, "friend", nil)
	if err != nil {
		return p, err
	}
	p.Friends = friends

	posts, err := d.list(p.Username, "post", d.c.decodeContent)
	if err != nil {
		return p, err
	}
	for _, content := range posts {
		p.Posts = append(p.Posts, models.Post{Content: content})
	}
	return p, nil
}

// list reads a count line followed by exactly that many lines, each
// passed through conv when it is not nil.
func (d *decoder) list(user, kind string, conv func(string) (string, error)) ([]string, error) {
	line, err := d.need(fmt.Sprintf("%s count of %q", kind, user))
	if err != nil {
		return nil, err
	}
	n, err := d.parseCount(line, kind+" count")
	if err != nil {
		return nil, err
	}

	var out []string
	for i := 1; i <= n; i++ {
		item, err := d.need(fmt.Sprintf("%s %d of %d for %q", kind, i, n, user))
		if err != nil {
			return nil, err
		}
		if conv != nil {
			if item, err = conv(item); err != nil {
				return nil, &LineError{Line: d.line, Err: err}
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (d *decoder) trailer() error {
	for {
		line, err := d.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "" {
			return d.malformed("unexpected data after last record")
		}
	}
}

func (d *decoder) parseCount(line, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return 0, d.malformed("invalid %s %q", what, line)
	}
	return n, nil
}

// need returns the next line, turning end of stream into ErrTruncatedStream.
func (d *decoder) need(what string) (string, error) {
	line, err := d.next()
	if errors.Is(err, io.EOF) {
		return "", &LineError{
			Line: d.line + 1,
			Err:  fmt.Errorf("%w: missing %s", common.ErrTruncatedStream, what),
		}
	}
	return line, err
}

// next returns the following line without its terminator. A final line
// lacking a newline is still returned; io.EOF comes after it.
func (d *decoder) next() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read stream: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	d.line++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (d *decoder) malformed(format string, args ...any) error {
	return &LineError{
		Line: d.line,
		Err:  fmt.Errorf("%w: %s", common.ErrMalformedStream, fmt.Sprintf(format, args...)),
	}
}
