package sockhttp

import (
	"context"
	"net"

	"dqx0.com/go/enginesock/internal/obs"
)

// Client performs single-exchange HTTP/1.1 requests against a daemon's
// control socket. The zero value talks to DefaultSocketPath over a
// Unix domain socket. Clients hold no connection state, so independent
// calls may run concurrently; each owns its socket end to end.
type Client struct {
	// SocketPath is the filesystem socket to dial. Empty means
	// DefaultSocketPath.
	SocketPath string
	// Connector overrides the platform socket binding.
	Connector Connector
	// Logger receives failure logs and, at Debug level, an echo of
	// every protocol line on the wire.
	Logger obs.Logger
	// Meter receives exchange counters and durations.
	Meter obs.Meter
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.PerformRequest(ctx, "GET", path, nil, "")
}

func (c *Client) Post(ctx context.Context, path string, content any, contentType string) (*Response, error) {
	return c.PerformRequest(ctx, "POST", path, content, contentType)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.PerformRequest(ctx, "DELETE", path, nil, "")
}

func (c *Client) open(ctx context.Context) (net.Conn, error) {
	conn := c.Connector
	if conn == nil {
		conn = &UnixConnector{}
	}
	return conn.Connect(ctx, c.socketPath())
}

func (c *Client) socketPath() string {
	if c.SocketPath != "" {
		return c.SocketPath
	}
	return DefaultSocketPath
}

func (c *Client) logf(level obs.Level, format string, args ...interface{}) {
	lg := c.Logger
	if lg == nil {
		lg = obs.NopLogger{}
	}
	lg.Logf(level, format, args...)
}

func (c *Client) count(name string, labels ...obs.Label) {
	c.meter().Counter(name, 1, labels...)
}

func (c *Client) histogram(name string, value float64, labels ...obs.Label) {
	c.meter().Histogram(name, value, labels...)
}

func (c *Client) meter() obs.Meter {
	if c.Meter != nil {
		return c.Meter
	}
	return obs.NopMeter{}
}
