// Package errors provides the error taxonomy for a goft session.
//
// Each failure mode of the handshake has its own structured type so
// callers (and tests) can tell a refused control connection from an
// unusable data port or a truncated response without string matching.
// The protocol never retries, so unlike general-purpose network errors
// these carry no retryability hint — every one of them is terminal for
// the session.
package errors

import (
	"errors"
	"fmt"
)

// ConnectError reports a failure to establish the control connection:
// DNS resolution, refusal, or timeout.
type ConnectError struct {
	Addr string // server host:port
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// BindError reports that the data port could not be bound: already in
// use, or outside the permitted range.
type BindError struct {
	Port int
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind data port %d: %v", e.Port, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// AcceptError reports that the server never completed (or the listener
// failed to accept) the inbound data connection, including the case
// where an accept deadline elapsed.
type AcceptError struct {
	Addr string // listener address
	Err  error
}

func (e *AcceptError) Error() string {
	return fmt.Sprintf("accept on %s: %v", e.Addr, e.Err)
}

func (e *AcceptError) Unwrap() error { return e.Err }

// SendError reports a failed or partial write on the control
// connection.  The wire contract has no framing, so a partial send is
// as fatal as a failed one.
type SendError struct {
	Addr string // control connection remote address
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send to %s: %v", e.Addr, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// ProtocolError reports a response shorter than the protocol minimum:
// the peer closed the data connection before delivering a complete
// payload.
type ProtocolError struct {
	Got  int // bytes actually received
	Want int // protocol minimum
	Err  error
}

func (e *ProtocolError) Error() string {
	msg := fmt.Sprintf("short response: got %d bytes, want at least %d", e.Got, e.Want)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// WrapConnect creates a ConnectError.
func WrapConnect(addr string, err error) *ConnectError {
	return &ConnectError{Addr: addr, Err: err}
}

// WrapBind creates a BindError.
func WrapBind(port int, err error) *BindError {
	return &BindError{Port: port, Err: err}
}

// WrapAccept creates an AcceptError.
func WrapAccept(addr string, err error) *AcceptError {
	return &AcceptError{Addr: addr, Err: err}
}

// WrapSend creates a SendError.
func WrapSend(addr string, err error) *SendError {
	return &SendError{Addr: addr, Err: err}
}

// WrapProtocol creates a ProtocolError for a short response.
func WrapProtocol(got, want int, err error) *ProtocolError {
	return &ProtocolError{Got: got, Want: want, Err: err}
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use goft/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
