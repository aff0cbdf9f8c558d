package sockhttp

import "testing"

func TestBuildQuery(t *testing.T) {
	if got := BuildQuery("all", 1, "since", "abc"); got != "?all=1&since=abc" {
		t.Fatalf("got %q", got)
	}
}

func TestBuildQuery_DropsNilValues(t *testing.T) {
	// A nil value drops its key too, at any position.
	if got := BuildQuery("a", nil, "b", "x"); got != "?b=x" {
		t.Fatalf("leading nil: got %q", got)
	}
	if got := BuildQuery("a", "x", "b", nil, "c", "y"); got != "?a=x&c=y" {
		t.Fatalf("middle nil: got %q", got)
	}
	if got := BuildQuery("a", "x", "b", nil); got != "?a=x" {
		t.Fatalf("trailing nil: got %q", got)
	}
}

func TestBuildQuery_AllAbsent(t *testing.T) {
	if got := BuildQuery("a", nil, "b", nil); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
	if got := BuildQuery(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestBuildQuery_DanglingKey(t *testing.T) {
	if got := BuildQuery("a"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
	if got := BuildQuery("a", "x", "b"); got != "?a=x" {
		t.Fatalf("got %q", got)
	}
}

func TestBuildQuery_Escapes(t *testing.T) {
	if got := BuildQuery("filter", "a b/c"); got != "?filter=a+b%2Fc" {
		t.Fatalf("got %q", got)
	}
}

func TestBuildQuery_NonStringValues(t *testing.T) {
	if got := BuildQuery("force", true, "limit", 10); got != "?force=true&limit=10" {
		t.Fatalf("got %q", got)
	}
}
