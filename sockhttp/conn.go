package sockhttp

import (
	"context"
	"fmt"
	"net"
)

// DefaultSocketPath is the engine's well-known control socket.
const DefaultSocketPath = "/var/run/docker.sock"

// Connector opens the duplex byte channel to the daemon's filesystem
// socket. It is the single OS-specific seam: alternate platform
// bindings implement Connector without touching the protocol logic.
type Connector interface {
	Connect(ctx context.Context, path string) (net.Conn, error)
}

// UnixConnector dials a Unix domain socket.
type UnixConnector struct {
	// Dialer overrides the zero dialer, e.g. to set a connect timeout.
	Dialer net.Dialer
}

func (u *UnixConnector) Connect(ctx context.Context, path string) (net.Conn, error) {
	c, err := u.Dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("sockhttp: connect %s: %w", path, err)
	}
	return c, nil
}
