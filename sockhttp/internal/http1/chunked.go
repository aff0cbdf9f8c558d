package http1

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errChunkFormat = errors.New("http1: invalid chunk format")

// maxChunkLine bounds chunk-size and trailer lines.
const maxChunkLine = 8 << 10

// chunkedReader decodes Transfer-Encoding: chunked from the Conn's
// buffered reader. After the zero-length chunk (and any trailers)
// every Read reports io.EOF.
type chunkedReader struct {
	c        *Conn
	remain   int64
	finished bool
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if r.finished {
		return 0, io.EOF
	}
	if r.remain <= 0 {
		size, err := r.readChunkSize()
		if err != nil {
			return 0, err
		}
		if size == 0 {
			if err := r.readTrailers(); err != nil {
				return 0, err
			}
			r.finished = true
			return 0, io.EOF
		}
		r.remain = size
	}
	if len(p) == 0 {
		return 0, nil
	}
	toRead := int64(len(p))
	if toRead > r.remain {
		toRead = r.remain
	}
	n, err := io.ReadFull(r.c.br, p[:toRead])
	r.remain -= int64(n)
	if err != nil {
		return n, err
	}
	if r.remain == 0 {
		if err := r.expectCRLF(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (r *chunkedReader) readChunkSize() (int64, error) {
	line, err := readLine(r.c.br, maxChunkLine)
	if err != nil {
		return 0, err
	}
	// Strip chunk extensions if any: "<hex>;<ext>"
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, errChunkFormat
	}
	n, err := strconv.ParseInt(line, 16, 64)
	if err != nil || n < 0 {
		return 0, errChunkFormat
	}
	return n, nil
}

func (r *chunkedReader) expectCRLF() error {
	b1, err := r.c.br.ReadByte()
	if err != nil {
		return err
	}
	b2, err := r.c.br.ReadByte()
	if err != nil {
		return err
	}
	if b1 != '\r' || b2 != '\n' {
		return fmt.Errorf("http1: expected CRLF after chunk, got %q%q", b1, b2)
	}
	return nil
}

func (r *chunkedReader) readTrailers() error {
	for {
		line, err := readLine(r.c.br, maxChunkLine)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		// Trailer headers are discarded.
	}
}

// chunkedWriter frames each Write as one chunk on the Conn's buffered
// writer. finish emits the zero-length terminator exactly once.
type chunkedWriter struct {
	c    *Conn
	done bool
}

func (w *chunkedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if _, err := fmt.Fprintf(w.c.bw, "%x\r\n", len(p)); err != nil {
		return 0, err
	}
	if _, err := w.c.bw.Write(p); err != nil {
		return 0, err
	}
	if _, err := w.c.bw.WriteString("\r\n"); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *chunkedWriter) finish() error {
	if w.done {
		return nil
	}
	w.done = true
	_, err := w.c.bw.WriteString("0\r\n\r\n")
	return err
}
