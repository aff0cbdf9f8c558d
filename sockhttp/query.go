package sockhttp

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildQuery renders alternating key/value pairs as a URL query
// string. Pairs whose value is nil are dropped entirely, as is a
// trailing key with no value; surviving pairs keep their order. Keys
// and values are percent-encoded here, so callers pass raw values.
// Returns "" when no pair survives, otherwise "?k=v&...".
func BuildQuery(pairs ...any) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		v := pairs[i+1]
		if v == nil {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(fmt.Sprint(pairs[i])))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fmt.Sprint(v)))
	}
	return b.String()
}
