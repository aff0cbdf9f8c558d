package sockhttp

import "io"

// Response is the outcome of one request/response exchange. Body is
// nil when the status signals no content (204). A non-nil Body is a
// live stream over the exchange's socket; the caller owns closing it,
// which releases the connection.
type Response struct {
	StatusCode int
	Reason     string
	Header     Header
	Body       io.ReadCloser
}
