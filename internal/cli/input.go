package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

var errEmptyInput = errors.New("empty input")

// GetSimpleText prints prompt to w and reads one line from reader with
// surrounding whitespace trimmed. A final line without a newline is
// returned as is; io.EOF is only reported when nothing was read.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetToken reads a line that must hold exactly one whitespace-free word,
// as usernames and passwords do.
func GetToken(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	line, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return "", errEmptyInput
	case 1:
		return fields[0], nil
	default:
		return "", fmt.Errorf("%q must be a single word", line)
	}
}

// GetPassword prints prompt to w and reads a password from the terminal
// without echo. When stdin is not a terminal it falls back to reading a
// visible line from reader.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if !isTerminal() {
		return GetToken(reader, prompt, w)
	}

	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(pw))
	if s == "" {
		return "", errEmptyInput
	}
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return "", errors.New("password must be a single word")
	}
	return s, nil
}
