package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"goft/internal/errors"
)

// DataListener is the client-side endpoint for the server-initiated
// data connection.  The protocol expects exactly one inbound connection
// per session: the listener accepts once and is then closed.  (Go's
// net.Listen does not expose the backlog knob; single use is enforced
// by the accept-once lifecycle instead.)
type DataListener struct {
	// AcceptTimeout bounds the wait for the server's dial-back.  Zero
	// means block forever, the base protocol's behaviour.
	AcceptTimeout time.Duration

	ln        net.Listener
	port      int
	closeOnce sync.Once
	closeErr  error
}

// ListenData binds the given port on all interfaces and starts
// listening.  The listener must be bound before the port is disclosed
// to the server; disclosing first opens a window where the server's
// dial-back is refused.
func ListenData(port int) (*DataListener, error) {
	if port < 1 || port > 65535 {
		return nil, errors.WrapBind(port, fmt.Errorf("port out of range 1-65535"))
	}
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.WrapBind(port, err)
	}
	return &DataListener{ln: ln, port: port}, nil
}

// Port returns the bound data port.
func (l *DataListener) Port() int { return l.port }

// Addr returns the listener's address.
func (l *DataListener) Addr() net.Addr { return l.ln.Addr() }

// Accept blocks until the server dials back, the optional timeout
// elapses, or the context is cancelled.  This is the session's sole
// suspension point while waiting on the network.
func (l *DataListener) Accept(ctx context.Context) (net.Conn, error) {
	if l.AcceptTimeout > 0 {
		if tl, ok := l.ln.(*net.TCPListener); ok {
			if err := tl.SetDeadline(time.Now().Add(l.AcceptTimeout)); err != nil {
				return nil, errors.WrapAccept(l.ln.Addr().String(), err)
			}
		}
	}

	// Unblock the pending accept when the context expires.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-done:
		}
	}()

	conn, err := l.ln.Accept()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WrapAccept(l.ln.Addr().String(), ctxErr)
		}
		return nil, errors.WrapAccept(l.ln.Addr().String(), err)
	}
	return conn, nil
}

// Close releases the listening socket.  Repeated calls return the
// first result.
func (l *DataListener) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.ln.Close()
	})
	return l.closeErr
}
