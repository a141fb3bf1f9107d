// Package transport provides connection establishment for the two
// channels of the protocol: an outbound control connection to the
// server, and an inbound data connection the server dials back to the
// client's listener.  Transports handle the "how" of byte movement,
// independent of the handshake sequencing (the session layer's job).
package transport

import (
	"context"
	"net"
)

// Dialer opens outbound network connections.  The session depends on
// this interface rather than a concrete dialer so tests can substitute
// in-memory or instrumented implementations.
type Dialer interface {
	// Dial establishes a connection to the given network address.
	Dial(ctx context.Context, network, address string) (net.Conn, error)

	// Close releases any long-lived resources held by the dialer.
	// Stateless dialers return nil.
	Close() error
}
