package sockhttp

import "testing"

func TestHeaderCaseInsensitive(t *testing.T) {
	h := Header{}
	h.Set("Content-Type", "text/plain")
	if got := h.Get("content-type"); got != "text/plain" {
		t.Fatalf("Get lower = %q", got)
	}
	if got := h.Get("CONTENT-TYPE"); got != "text/plain" {
		t.Fatalf("Get upper = %q", got)
	}
	h.Set("content-type", "application/json")
	if got := h.Get("Content-Type"); got != "application/json" {
		t.Fatalf("after Set = %q", got)
	}
	h.Del("Content-Type")
	if got := h.Get("content-type"); got != "" {
		t.Fatalf("after Del = %q, want empty", got)
	}
}

func TestHeaderNil(t *testing.T) {
	var h Header
	if got := h.Get("x"); got != "" {
		t.Fatalf("nil Get = %q", got)
	}
	h.Set("x", "y") // must not panic
	h.Del("x")
}
