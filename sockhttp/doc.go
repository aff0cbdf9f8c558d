// Package sockhttp is a minimal HTTP/1.1 client for daemons that
// expose their control API on a Unix domain socket, such as a local
// container engine. The transport is hand-rolled: request framing
// (Content-Length vs. chunked bodies), status-line and header parsing,
// and chunked transfer decoding are implemented here rather than
// borrowed from a general-purpose HTTP client.
//
// Every call dials a fresh connection, performs exactly one
// request/response exchange, and closes the socket when the caller
// finishes reading the body. There is no pooling, keep-alive, TLS, or
// redirect handling.
//
// Quick start:
//
//	c := &sockhttp.Client{}
//	res, err := c.Get(context.Background(), "/containers/json"+sockhttp.BuildQuery("all", 1))
//	if err != nil { log.Fatal(err) }
//	defer res.Body.Close()
//	b, _ := io.ReadAll(res.Body)
//	fmt.Println(res.StatusCode, string(b))
//
// Or decoded, with camelCase object keys rewritten to dashed upper
// case:
//
//	v, err := c.PerformJSONRequest(context.Background(), "GET", "/version", nil, "")
//	if err != nil { log.Fatal(err) }
//	fmt.Println(v)
//
// A non-2xx status never yields a Response; it surfaces as a
// *StatusError carrying the method, URL, status code, and reason
// phrase.
package sockhttp
