package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// input tokenizes the command stream. Commands mix whitespace-separated
// tokens with whole-line arguments, so both kinds of read share one buffer.
type input struct {
	r *bufio.Reader
}

func newInput(r io.Reader) *input {
	return &input{r: bufio.NewReader(r)}
}

// next skips leading whitespace, including line breaks, and returns the
// following token. The whitespace after the token is left unread.
func (in *input) next() (string, error) {
	var sb strings.Builder
	for {
		ch, _, err := in.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(ch) {
			if sb.Len() == 0 {
				continue
			}
			if err := in.r.UnreadRune(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
		sb.WriteRune(ch)
	}
}

// nextLine returns the rest of the current line without its terminator.
func (in *input) nextLine() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// nextInt reads a token and parses it as an integer.
func (in *input) nextInt() (int, error) {
	tok, err := in.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", tok)
	}
	return n, nil
}

// intLine reads an integer and discards the rest of its line.
func (in *input) intLine() (int, error) {
	n, err := in.nextInt()
	if err != nil {
		return 0, err
	}
	if _, err := in.nextLine(); err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	return n, nil
}

// sequence reads a count line followed by that many lines.
func (in *input) sequence() ([]string, error) {
	n, err := in.intLine()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative count %d", n)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line, err := in.nextLine()
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, nil
}
