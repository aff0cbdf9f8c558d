package http1

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

type rwc struct {
	io.Reader
	io.Writer
}

func (rwc) Close() error { return nil }

func encodeChunked(t *testing.T, pieces ...[]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	c := NewConn(rwc{Reader: strings.NewReader(""), Writer: &buf})
	c.SetChunkedWrite(true)
	for _, p := range pieces {
		if _, err := c.Write(p); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := c.FinishChunkedWrite(); err != nil {
		t.Fatalf("FinishChunkedWrite: %v", err)
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	return buf.Bytes()
}

func decodeChunked(t *testing.T, raw []byte) []byte {
	t.Helper()
	c := NewConn(rwc{Reader: bytes.NewReader(raw), Writer: io.Discard})
	c.SetChunkedRead(true)
	b, err := io.ReadAll(c)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return b
}

func TestChunked_RoundTripEmpty(t *testing.T) {
	raw := encodeChunked(t)
	if string(raw) != "0\r\n\r\n" {
		t.Fatalf("encoded=%q", string(raw))
	}
	if got := decodeChunked(t, raw); len(got) != 0 {
		t.Fatalf("decoded=%q, want empty", string(got))
	}
}

func TestChunked_RoundTripSingleByte(t *testing.T) {
	raw := encodeChunked(t, []byte("x"))
	if got := decodeChunked(t, raw); string(got) != "x" {
		t.Fatalf("decoded=%q", string(got))
	}
}

func TestChunked_RoundTripMultipleChunks(t *testing.T) {
	raw := encodeChunked(t, []byte("hel"), []byte("lo, "), []byte("world"))
	if got := decodeChunked(t, raw); string(got) != "hello, world" {
		t.Fatalf("decoded=%q", string(got))
	}
}

func TestChunked_EncodingFrames(t *testing.T) {
	raw := encodeChunked(t, []byte("hello"))
	if string(raw) != "5\r\nhello\r\n0\r\n\r\n" {
		t.Fatalf("encoded=%q", string(raw))
	}
}

func TestChunked_DecodeCanned(t *testing.T) {
	c := NewConn(rwc{Reader: strings.NewReader("5\r\nhello\r\n0\r\n\r\n"), Writer: io.Discard})
	c.SetChunkedRead(true)
	b, err := io.ReadAll(c)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(b) != "hello" {
		t.Fatalf("body=%q", string(b))
	}
	// The stream stays ended after the zero-length chunk.
	if n, err := c.Read(make([]byte, 1)); n != 0 || err != io.EOF {
		t.Fatalf("read after end = %d, %v, want 0, EOF", n, err)
	}
}

func TestChunked_DecodeIgnoresExtensions(t *testing.T) {
	c := NewConn(rwc{Reader: strings.NewReader("5;name=v\r\nhello\r\n0\r\n\r\n"), Writer: io.Discard})
	c.SetChunkedRead(true)
	b, err := io.ReadAll(c)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(b) != "hello" {
		t.Fatalf("body=%q", string(b))
	}
}

func TestChunked_DecodeBadSize(t *testing.T) {
	c := NewConn(rwc{Reader: strings.NewReader("zz\r\nhello\r\n"), Writer: io.Discard})
	c.SetChunkedRead(true)
	if _, err := io.ReadAll(c); err == nil {
		t.Fatal("expected error for bad chunk size")
	}
}
