package session

// State identifies where a session is in the handshake.  The sequence
// is strictly linear; every failure path jumps straight to StateClosed
// via the cleanup in Run.
type State int

const (
	StateIdle State = iota
	StateConnected
	StateRequestSent
	StatePortDisclosed
	StateAwaitingData
	StateDataReceived
	StateClosed
)

var stateNames = map[State]string{
	StateIdle:          "idle",
	StateConnected:     "connected",
	StateRequestSent:   "request-sent",
	StatePortDisclosed: "port-disclosed",
	StateAwaitingData:  "awaiting-data",
	StateDataReceived:  "data-received",
	StateClosed:        "closed",
}

// String returns the state name for logs.
func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}
