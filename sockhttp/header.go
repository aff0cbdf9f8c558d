package sockhttp

import "strings"

// Header maps lower-cased header names to values as parsed from the
// wire. Duplicate names are not merged; the last occurrence wins.
type Header map[string]string

// Get returns the value for key, matching case-insensitively.
func (h Header) Get(key string) string {
	if h == nil {
		return ""
	}
	return h[strings.ToLower(key)]
}

func (h Header) Set(key, value string) {
	if h == nil {
		return
	}
	h[strings.ToLower(key)] = value
}

func (h Header) Del(key string) {
	if h == nil {
		return
	}
	delete(h, strings.ToLower(key))
}
