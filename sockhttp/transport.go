package sockhttp

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"dqx0.com/go/enginesock/internal/obs"
	"dqx0.com/go/enginesock/sockhttp/internal/http1"
)

// PerformRequest dials the daemon's socket, performs one
// request/response exchange, and returns the parsed response. content
// may be nil, a string, a []byte, or an io.Reader; readers without a
// determinable length are sent with chunked framing. The returned
// Body, when non-nil, keeps the socket open until closed.
func (c *Client) PerformRequest(ctx context.Context, method, path string, content any, contentType string) (*Response, error) {
	start := time.Now()
	raw, err := c.open(ctx)
	if err != nil {
		c.logf(obs.Error, "connect %s failed: %v", c.socketPath(), err)
		c.count("sockhttp_exchanges_error", obs.Label{Key: "stage", Value: "connect"})
		return nil, err
	}
	conn := http1.NewConn(raw)
	conn.Tap = obs.WireTap(c.Logger)

	if err := send(conn, method, path, content, contentType); err != nil {
		_ = conn.Close()
		c.logf(obs.Warn, "write %s %s failed: %v", method, path, err)
		c.count("sockhttp_exchanges_error", obs.Label{Key: "stage", Value: "write"})
		return nil, err
	}
	resp, err := receive(conn, method, path)
	if err != nil {
		_ = conn.Close()
		c.logf(obs.Warn, "read %s %s failed: %v", method, path, err)
		c.count("sockhttp_exchanges_error", obs.Label{Key: "stage", Value: "read"})
		return nil, err
	}
	if resp.Body == nil {
		_ = conn.Close()
	}
	c.count("sockhttp_exchanges_total", obs.Label{Key: "method", Value: method})
	c.histogram("sockhttp_exchange_duration_ms", float64(time.Since(start).Milliseconds()),
		obs.Label{Key: "method", Value: method}, obs.Label{Key: "status", Value: strconv.Itoa(resp.StatusCode)})
	return resp, nil
}

// send frames one request onto the connection: request line, headers,
// blank line, then the body under Content-Length or chunked framing.
// The two framings are mutually exclusive; unsupported content is
// rejected before any byte hits the wire.
func send(c *http1.Conn, method, target string, content any, contentType string) error {
	var (
		framing http1.Framing
		length  int64
		data    []byte
		stream  io.Reader
	)
	switch v := content.(type) {
	case nil:
		framing = http1.FramingNone
	case string:
		framing = http1.FramingLength
		length = int64(len(v))
		data = []byte(v)
	case []byte:
		framing = http1.FramingLength
		length = int64(len(v))
		data = v
	case io.Reader:
		stream = v
		if n, ok := streamLength(v); ok {
			framing = http1.FramingLength
			length = n
		} else {
			framing = http1.FramingChunked
		}
	default:
		return fmt.Errorf("%w: %T", ErrBadContent, content)
	}
	if err := c.WriteRequestHead(method, target, contentType, framing, length); err != nil {
		return err
	}
	switch {
	case stream != nil:
		if framing == http1.FramingChunked {
			c.SetChunkedWrite(true)
		}
		if _, err := io.Copy(c, stream); err != nil {
			return err
		}
		if err := c.FinishChunkedWrite(); err != nil {
			return err
		}
	case len(data) > 0:
		if _, err := c.Write(data); err != nil {
			return err
		}
	}
	return c.Flush()
}

// streamLength reports the byte length of s when it can be determined
// without consuming the stream.
func streamLength(s io.Reader) (int64, bool) {
	switch v := s.(type) {
	case *os.File:
		if fi, err := v.Stat(); err == nil && fi.Mode().IsRegular() {
			return fi.Size(), true
		}
		return 0, false
	case interface{ Len() int }:
		return int64(v.Len()), true
	}
	return 0, false
}

// receive parses the response head and hands back the body as a live
// stream over the same connection. A non-2xx status surfaces as a
// *StatusError and no body is exposed; closing the connection on error
// paths is the caller's job.
func receive(c *http1.Conn, method, url string) (*Response, error) {
	proto, code, reason, err := c.ReadStatusLine()
	if err != nil {
		return nil, err
	}
	if proto != "HTTP/1.1" {
		return nil, fmt.Errorf("%w: %s", ErrProtocolVersion, proto)
	}
	if code < 200 || code > 299 {
		return nil, &StatusError{Method: method, URL: url, StatusCode: code, Reason: reason}
	}
	hdr, err := c.ReadHeaders()
	if err != nil {
		return nil, err
	}
	resp := &Response{StatusCode: code, Reason: reason, Header: Header(hdr)}
	if code == 204 {
		return resp, nil
	}

	te := resp.Header.Get("Transfer-Encoding")
	if i := strings.IndexByte(te, ';'); i >= 0 {
		te = te[:i]
	}
	te = strings.TrimSpace(te)
	if strings.EqualFold(te, "chunked") {
		c.SetChunkedRead(true)
		resp.Body = &bodyStream{c: c}
		return resp, nil
	}
	if v := resp.Header.Get("Content-Length"); v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("sockhttp: invalid content-length %q", v)
		}
		resp.Body = &bodyStream{c: c, r: io.LimitReader(c, n)}
		return resp, nil
	}
	// No framing header: raw bytes until the daemon closes its end.
	resp.Body = &bodyStream{c: c}
	return resp, nil
}

// bodyStream exposes the response payload and owns the socket: Close
// releases the connection, ending the exchange. Closing mid-body is
// the only way to abandon an exchange and never affects other
// connections.
type bodyStream struct {
	c *http1.Conn
	r io.Reader // nil means read the conn directly
}

func (b *bodyStream) Read(p []byte) (int, error) {
	if b.r != nil {
		return b.r.Read(p)
	}
	return b.c.Read(p)
}

func (b *bodyStream) Close() error { return b.c.Close() }
