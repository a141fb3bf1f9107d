// Package session orchestrates the protocol handshake: send the
// request on the control connection, bind the data listener, disclose
// the data port, accept the server's dial-back, and read the response.
//
// The sequencing matters more than any individual step.  The single
// most important invariant is that the data listener is bound and
// listening before its port is disclosed — disclosing first opens a
// window where the server's dial-back is refused with no retry.  The
// request send must also fully complete before disclosure, since the
// server parses the command before it reads the port.
package session

import (
	"context"
	"io"
	"net"
	"os"
	"time"

	"github.com/google/uuid"

	"goft/internal/metrics"
	"goft/internal/protocol"
	"goft/internal/transport"
	"goft/util"
)

// Result summarizes a completed session.
type Result struct {
	SessionID     uuid.UUID
	BytesReceived int64
	ControlRemote string // server's control-channel address
	DataRemote    string // server's data-channel address
	Duration      time.Duration
}

// Protocol runs one session: one request, one response, then teardown.
// It owns the control connection, the data listener, and the accepted
// data connection exclusively; none survive Run.
type Protocol struct {
	Dialer        transport.Dialer
	Codec         protocol.Codec
	Server        string
	ControlPort   int
	DataPort      int
	AcceptTimeout time.Duration // zero blocks forever on accept
	Logger        *util.Logger
	Metrics       *metrics.Collector // nil disables collection

	// Sink receives the response payload.  Defaults to os.Stdout when
	// nil.  Override in tests for deterministic assertions.
	Sink io.Writer

	// OnTransition, when set, observes every state change in order.
	// Tests use it as a logical clock to verify the handshake
	// sequencing; nil in production.
	OnTransition func(from, to State)

	state    State
	control  *transport.ControlConn
	listener *transport.DataListener
	data     net.Conn
}

func (p *Protocol) sink() io.Writer {
	if p.Sink != nil {
		return p.Sink
	}
	return os.Stdout
}

// State returns the session's current state.
func (p *Protocol) State() State { return p.state }

func (p *Protocol) transition(to State) {
	from := p.state
	p.state = to
	if p.OnTransition != nil {
		p.OnTransition(from, to)
	}
	p.Logger.Debug("session state %s -> %s", from, to)
}

// Run executes the full handshake for req.  Whatever happens, both
// connections and the listener end up closed: the deferred cleanup
// runs on every exit path and closes each resource independently, so
// a failure closing one never leaks the other.
func (p *Protocol) Run(ctx context.Context, req protocol.Request) (res *Result, err error) {
	id := uuid.New()
	start := time.Now()
	p.Logger.Debug("session %s: %s", id, req)

	defer func() {
		p.cleanup()
		if err != nil {
			p.Metrics.RecordError(err)
		}
	}()

	// Idle → Connected
	addr := util.FormatAddr(p.Server, p.ControlPort)
	conn, err := p.Dialer.Dial(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	p.control = transport.NewControlConn(conn)
	p.Metrics.ConnectionOpened()
	p.transition(StateConnected)
	p.Logger.Info("connection established with server on port %d", p.ControlPort)

	// Connected → RequestSent
	payload, err := p.Codec.EncodeRequest(req)
	if err != nil {
		return nil, err
	}
	if err := p.control.Send(payload); err != nil {
		return nil, err
	}
	p.Metrics.BytesSent(int64(len(payload)))
	p.transition(StateRequestSent)
	p.Logger.Verbose("request sent (%d bytes, %s wire)", len(payload), p.Codec.Name())

	// RequestSent → PortDisclosed: bind FIRST, then disclose.
	ln, err := transport.ListenData(p.DataPort)
	if err != nil {
		return nil, err
	}
	ln.AcceptTimeout = p.AcceptTimeout
	p.listener = ln

	disclosure := protocol.EncodePort(p.DataPort)
	if err := p.control.Send(disclosure); err != nil {
		return nil, err
	}
	p.Metrics.BytesSent(int64(len(disclosure)))
	p.transition(StatePortDisclosed)
	p.Logger.Info("listening for data connections on port %d", p.DataPort)

	// PortDisclosed → AwaitingData: the sole suspension point while
	// waiting on the network.
	p.transition(StateAwaitingData)
	dataConn, err := ln.Accept(ctx)
	if err != nil {
		return nil, err
	}
	p.data = dataConn
	p.Metrics.ConnectionOpened()
	p.Logger.Verbose("data connection from %s", dataConn.RemoteAddr())

	// AwaitingData → DataReceived
	n, err := protocol.ReadResponse(dataConn, p.sink())
	p.Metrics.BytesReceived(n)
	if err != nil {
		return nil, err
	}
	p.transition(StateDataReceived)
	p.Logger.Verbose("received %d response bytes", n)

	return &Result{
		SessionID:     id,
		BytesReceived: n,
		ControlRemote: p.control.RemoteAddr().String(),
		DataRemote:    dataConn.RemoteAddr().String(),
		Duration:      time.Since(start),
	}, nil
}

// cleanup closes whichever resources the session opened.  Each close
// is independent: an error from one never skips the others.
func (p *Protocol) cleanup() {
	if p.data != nil {
		if err := p.data.Close(); err != nil {
			p.Logger.Debug("closing data connection: %v", err)
		}
		p.Metrics.ConnectionClosed()
		p.data = nil
	}
	if p.listener != nil {
		if err := p.listener.Close(); err != nil {
			p.Logger.Debug("closing data listener: %v", err)
		}
		p.listener = nil
	}
	if p.control != nil {
		if err := p.control.Close(); err != nil {
			p.Logger.Debug("closing control connection: %v", err)
		}
		p.Metrics.ConnectionClosed()
		p.control = nil
	}
	if p.state != StateClosed {
		p.transition(StateClosed)
	}
}
