package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, config file parsing, and environment variable
// loading.

const (
	// MinPort and MaxPort bound every port the client will use.
	MinPort = 1
	MaxPort = 65535

	// DefaultConnTimeout is the TCP connection timeout for the
	// control channel.
	DefaultConnTimeout = 30 * time.Second

	// DefaultAcceptTimeout is the bound on waiting for the server's
	// dial-back.  Zero blocks forever, matching the base protocol;
	// set -w to avoid hanging on a server that never connects.
	DefaultAcceptTimeout = 0 * time.Second

	// DefaultWire is the wire format spoken on the control channel.
	// "legacy" interoperates with the original server; "tagged" uses
	// the unambiguous one-byte discriminant framing.
	DefaultWire = "legacy"
)
