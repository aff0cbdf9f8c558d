package http1

import "fmt"

// Framing selects how the request body is delimited on the wire. The
// length and chunked modes are mutually exclusive per request.
type Framing int

const (
	FramingNone Framing = iota
	FramingLength
	FramingChunked
)

// WriteRequestHead writes the request line, the optional Content-Type,
// the body-framing header, and the blank-line terminator, then
// flushes. contentLength is consulted only for FramingLength. Body
// bytes are not written here.
func (c *Conn) WriteRequestHead(method, target, contentType string, framing Framing, contentLength int64) error {
	if err := c.WriteLine(method + " " + target + " HTTP/1.1"); err != nil {
		return err
	}
	if contentType != "" {
		if err := c.WriteLine("Content-Type: " + contentType); err != nil {
			return err
		}
	}
	switch framing {
	case FramingLength:
		if err := c.WriteLine(fmt.Sprintf("Content-Length: %d", contentLength)); err != nil {
			return err
		}
	case FramingChunked:
		if err := c.WriteLine("Transfer-Encoding: chunked"); err != nil {
			return err
		}
	}
	if err := c.WriteLine(""); err != nil {
		return err
	}
	return c.Flush()
}
