package sockhttp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// PerformJSONRequest runs one exchange and decodes the entire response
// body as JSON. Some endpoints stream several JSON values back-to-back
// with no terminator; those decode to a slice, and a clean end of
// stream between values is normal termination, not an error. Object
// keys are rewritten by DashKey. Returns nil when the response has no
// body. The body is closed on every exit path, including decode
// errors.
func (c *Client) PerformJSONRequest(ctx context.Context, method, path string, content any, contentType string) (any, error) {
	resp, err := c.PerformRequest(ctx, method, path, content, contentType)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return nil, nil
	}
	defer resp.Body.Close()
	return decodeJSONStream(resp.Body)
}

func decodeJSONStream(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	var vals []any
	for {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		vals = append(vals, dashKeys(v))
	}
	switch len(vals) {
	case 0:
		return nil, nil
	case 1:
		return vals[0], nil
	default:
		return vals, nil
	}
}

// DashKey rewrites an ASCII camelCase key by inserting a dash before
// every internal upper-case letter and then upper-casing the whole
// key: "camelCase" becomes "CAMEL-CASE". Already-dashed or
// already-upper input is not special-cased.
func DashKey(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' && i > 0 {
			b.WriteByte('-')
		}
		b.WriteByte(ch)
	}
	return strings.ToUpper(b.String())
}

func dashKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[DashKey(k)] = dashKeys(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = dashKeys(e)
		}
		return t
	}
	return v
}
