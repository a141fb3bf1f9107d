// Package config defines the runtime configuration for goft and
// provides port parsing and validation helpers.
package config

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds every tuneable for a single goft session.
type Config struct {
	// ── Connection ───────────────────────────────────────────────────
	Server      string // server hostname or IP
	ControlPort int    // server's control port
	DataPort    int    // local port disclosed for the dial-back
	ConnTimeout time.Duration
	NoDNS       bool // numeric-only, no hostname resolution

	// ── Request ──────────────────────────────────────────────────────
	ListDir  bool   // -l: request the directory listing
	FileName string // -g: request this file

	// ── Protocol ─────────────────────────────────────────────────────
	Wire          string        // wire format: "legacy" or "tagged"
	AcceptTimeout time.Duration // bound on the dial-back wait (0 = forever)

	// ── Output ───────────────────────────────────────────────────────
	OutputPath string // -o: save the payload here instead of stdout
	Verbose    int
	Stats      bool // print a metrics snapshot on exit
}

// ParsePort parses a single decimal port number, rejecting anything
// outside 1-65535.
func ParsePort(spec string) (int, error) {
	port, err := strconv.Atoi(spec)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q", spec)
	}
	if port < MinPort || port > MaxPort {
		return 0, fmt.Errorf("port %d out of range %d-%d", port, MinPort, MaxPort)
	}
	return port, nil
}

// Validate checks that the configuration describes exactly one
// runnable session.
func (c *Config) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("server hostname is required (use --help for usage)")
	}
	if c.ControlPort < MinPort || c.ControlPort > MaxPort {
		return fmt.Errorf("control port %d out of range %d-%d", c.ControlPort, MinPort, MaxPort)
	}
	if c.DataPort < MinPort || c.DataPort > MaxPort {
		return fmt.Errorf("data port %d out of range %d-%d", c.DataPort, MinPort, MaxPort)
	}

	if c.ListDir && c.FileName != "" {
		return fmt.Errorf("-l and -g are mutually exclusive")
	}
	if !c.ListDir && c.FileName == "" {
		return fmt.Errorf("a request is required: -l or -g <filename>")
	}

	switch c.Wire {
	case "", "legacy", "tagged":
	default:
		return fmt.Errorf("unknown wire format %q (want legacy or tagged)", c.Wire)
	}

	if c.AcceptTimeout < 0 {
		return fmt.Errorf("accept timeout must not be negative")
	}

	return nil
}
