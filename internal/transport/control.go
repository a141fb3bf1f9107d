package transport

import (
	"context"
	"net"
	"sync"
	"time"

	"goft/internal/errors"
	"goft/util"
)

// ControlDialer establishes the control connection to the server with
// a single attempt.  The client has no reconnection policy, so a
// refused or timed-out dial surfaces immediately as a ConnectError.
type ControlDialer struct {
	Timeout time.Duration
	NoDNS   bool // numeric-only, skip hostname resolution
}

// Dial connects to address over the given network.  Resolution happens
// as part of the dial; with NoDNS the host part must already be a
// numeric IP.
func (d *ControlDialer) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	if d.NoDNS {
		host, _, err := net.SplitHostPort(address)
		if err != nil {
			return nil, errors.WrapConnect(address, err)
		}
		if _, err := util.LookupHost(host, true); err != nil {
			return nil, errors.WrapConnect(address, err)
		}
	}

	dialer := net.Dialer{Timeout: d.Timeout}
	conn, err := dialer.DialContext(ctx, network, address)
	if err != nil {
		return nil, errors.WrapConnect(address, err)
	}
	return conn, nil
}

// Close is a no-op for the stateless control dialer.
func (d *ControlDialer) Close() error { return nil }

// ── Control connection ───────────────────────────────────────────────

// ControlConn owns the control connection for one session.  It delivers
// whole buffers or fails, and its Close is idempotent — the cleanup
// path may close it more than once without signalling an error.
type ControlConn struct {
	conn      net.Conn
	closeOnce sync.Once
	closeErr  error
}

// NewControlConn wraps an established connection.
func NewControlConn(conn net.Conn) *ControlConn {
	return &ControlConn{conn: conn}
}

// Send writes the full buffer to the control connection or fails with
// a SendError.  A partial write is an error: the wire contract has no
// framing, so the server cannot detect a truncated message.
func (c *ControlConn) Send(p []byte) error {
	if err := util.WriteFull(c.conn, p); err != nil {
		return errors.WrapSend(c.RemoteAddr().String(), err)
	}
	return nil
}

// RemoteAddr returns the server's address.
func (c *ControlConn) RemoteAddr() net.Addr { return c.conn.RemoteAddr() }

// Close releases the socket.  Repeated calls return the first result.
func (c *ControlConn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}
