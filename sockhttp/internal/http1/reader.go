package http1

import (
	"bufio"
	"errors"
	"strconv"
	"strings"
)

const maxHeaderLine = 8 << 10

var (
	ErrMalformedStatus = errors.New("http1: malformed status line")
	ErrMalformedHeader = errors.New("http1: malformed header line")
	ErrLineTooLong     = errors.New("http1: line too long")
)

// ReadStatusLine parses "<proto> <code> <reason>". The reason phrase
// may be absent. Validating the protocol version is the caller's job.
func (c *Conn) ReadStatusLine() (proto string, code int, reason string, err error) {
	line, err := c.ReadLine(maxHeaderLine)
	if err != nil {
		return "", 0, "", err
	}
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return "", 0, "", ErrMalformedStatus
	}
	proto = parts[0]
	code, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, "", ErrMalformedStatus
	}
	if len(parts) == 3 {
		reason = parts[2]
	}
	return proto, code, reason, nil
}

// ReadHeaders reads header lines until the blank-line terminator.
// Names are lower-cased; when a name repeats, the last occurrence
// wins.
func (c *Conn) ReadHeaders() (map[string]string, error) {
	h := make(map[string]string)
	for {
		line, err := c.ReadLine(maxHeaderLine)
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}
		i := strings.IndexByte(line, ':')
		if i <= 0 {
			return nil, ErrMalformedHeader
		}
		k := strings.ToLower(strings.TrimSpace(line[:i]))
		v := strings.TrimSpace(line[i+1:])
		h[k] = v
	}
	return h, nil
}

func readLine(br *bufio.Reader, limit int) (string, error) {
	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '\n' {
			break
		}
		if b != '\r' {
			sb.WriteByte(b)
		}
		if limit > 0 && sb.Len() > limit {
			return "", ErrLineTooLong
		}
	}
	return sb.String(), nil
}
