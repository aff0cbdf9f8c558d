package http1

import (
	"bufio"
	"io"
)

// Conn wraps one duplex byte channel for a single HTTP/1.1 exchange.
// Chunked transfer coding can be toggled independently for the read
// and write directions; line-oriented protocol I/O always bypasses
// the chunk codec.
type Conn struct {
	rwc io.ReadWriteCloser
	br  *bufio.Reader
	bw  *bufio.Writer

	// Tap, when set, observes every protocol line: '>' for lines
	// written, '<' for lines read. Purely observational.
	Tap func(dir byte, line string)

	cr *chunkedReader
	cw *chunkedWriter
}

func NewConn(rwc io.ReadWriteCloser) *Conn {
	return &Conn{rwc: rwc, br: bufio.NewReader(rwc), bw: bufio.NewWriter(rwc)}
}

// SetChunkedRead toggles transparent de-chunking on Read.
func (c *Conn) SetChunkedRead(on bool) {
	if on {
		c.cr = &chunkedReader{c: c, remain: -1}
	} else {
		c.cr = nil
	}
}

// SetChunkedWrite toggles chunk framing on Write.
func (c *Conn) SetChunkedWrite(on bool) {
	if on {
		c.cw = &chunkedWriter{c: c}
	} else {
		c.cw = nil
	}
}

func (c *Conn) Read(p []byte) (int, error) {
	if c.cr != nil {
		return c.cr.Read(p)
	}
	return c.br.Read(p)
}

func (c *Conn) Write(p []byte) (int, error) {
	if c.cw != nil {
		return c.cw.Write(p)
	}
	return c.bw.Write(p)
}

// FinishChunkedWrite emits the terminating zero-length chunk. It is a
// no-op when chunked writing is off.
func (c *Conn) FinishChunkedWrite() error {
	if c.cw == nil {
		return nil
	}
	return c.cw.finish()
}

func (c *Conn) Flush() error { return c.bw.Flush() }

func (c *Conn) Close() error { return c.rwc.Close() }

// WriteLine writes s followed by CRLF. The wire protocol mandates CRLF
// regardless of platform line-ending conventions.
func (c *Conn) WriteLine(s string) error {
	c.tap('>', s)
	if _, err := c.bw.WriteString(s); err != nil {
		return err
	}
	_, err := c.bw.WriteString("\r\n")
	return err
}

// ReadLine reads up to LF and returns the line without its CR/LF
// terminator. limit bounds the line length; 0 means unbounded.
func (c *Conn) ReadLine(limit int) (string, error) {
	line, err := readLine(c.br, limit)
	if err != nil {
		return "", err
	}
	c.tap('<', line)
	return line, nil
}

func (c *Conn) tap(dir byte, line string) {
	if c.Tap != nil {
		c.Tap(dir, line)
	}
}
