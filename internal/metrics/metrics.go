// Package metrics provides lightweight counters for tracking runtime
// statistics of a goft session.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for one session: how many sockets
// were opened, how many bytes crossed each channel, and whether the
// handshake failed.
type Collector struct {
	connectionsActive atomic.Int64
	connectionsTotal  atomic.Int64
	bytesSent         atomic.Int64
	bytesReceived     atomic.Int64
	errorsTotal       atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Connection metrics ───────────────────────────────────────────────

// ConnectionOpened increments both the active and total counters.
func (c *Collector) ConnectionOpened() {
	if c == nil {
		return
	}
	c.connectionsActive.Add(1)
	c.connectionsTotal.Add(1)
}

// ConnectionClosed decrements the active connection counter.
func (c *Collector) ConnectionClosed() {
	if c == nil {
		return
	}
	c.connectionsActive.Add(-1)
}

// ActiveConnections returns the current number of open connections.
func (c *Collector) ActiveConnections() int64 {
	if c == nil {
		return 0
	}
	return c.connectionsActive.Load()
}

// TotalConnections returns the lifetime connection count.
func (c *Collector) TotalConnections() int64 {
	if c == nil {
		return 0
	}
	return c.connectionsTotal.Load()
}

// ── I/O metrics ──────────────────────────────────────────────────────

// BytesSent records n bytes written to the control connection.
func (c *Collector) BytesSent(n int64) {
	if c == nil {
		return
	}
	c.bytesSent.Add(n)
}

// BytesReceived records n bytes read from the data connection.
func (c *Collector) BytesReceived(n int64) {
	if c == nil {
		return
	}
	c.bytesReceived.Add(n)
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError counts a failure and remembers its message.
func (c *Collector) RecordError(err error) {
	if c == nil || err == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = err.Error()
	c.mu.Unlock()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time copy of the collector's counters.
type Snapshot struct {
	ConnectionsActive int64         `json:"connections_active"`
	ConnectionsTotal  int64         `json:"connections_total"`
	BytesSent         int64         `json:"bytes_sent"`
	BytesReceived     int64         `json:"bytes_received"`
	ErrorsTotal       int64         `json:"errors_total"`
	Uptime            time.Duration `json:"uptime_ns"`
	LastError         string        `json:"last_error,omitempty"`
}

// Snapshot returns the current counter values.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	last := c.lastErrorMsg
	start := c.startTime
	c.mu.RUnlock()

	return Snapshot{
		ConnectionsActive: c.connectionsActive.Load(),
		ConnectionsTotal:  c.connectionsTotal.Load(),
		BytesSent:         c.bytesSent.Load(),
		BytesReceived:     c.bytesReceived.Load(),
		ErrorsTotal:       c.errorsTotal.Load(),
		Uptime:            time.Since(start),
		LastError:         last,
	}
}

// JSON renders the snapshot for --stats output.
func (c *Collector) JSON() ([]byte, error) {
	return json.MarshalIndent(c.Snapshot(), "", "  ")
}
