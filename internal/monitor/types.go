package monitor

import "time"

// NodeStatus represents the state of a monitored account's session.
type NodeStatus int

const (
	// StatusConnecting is the seed state before the first poll completes.
	StatusConnecting NodeStatus = iota
	// StatusActive means the session is polling; the metric may be zero.
	StatusActive
	// StatusLaunchError means the engine or proxy failed at launch.
	StatusLaunchError
	// StatusNavigationTimeout means the dashboard was unreachable or slow.
	StatusNavigationTimeout
	// StatusSessionError is any other engine-level failure.
	StatusSessionError
)

// String returns a human-readable status string.
func (s NodeStatus) String() string {
	switch s {
	case StatusConnecting:
		return "connecting"
	case StatusActive:
		return "Active"
	case StatusLaunchError:
		return "Launch Error"
	case StatusNavigationTimeout:
		return "Timeout/Error"
	case StatusSessionError:
		return "Error"
	default:
		return "unknown"
	}
}

// Failed reports whether the status is a terminal session failure.
func (s NodeStatus) Failed() bool {
	return s == StatusLaunchError || s == StatusNavigationTimeout || s == StatusSessionError
}

// StatusRecord is the latest observation for one account. Replaced whole
// on every poll cycle; no history is kept.
type StatusRecord struct {
	Account  string
	Proxy    string // proxy label, or "none"
	Points   int
	Status   NodeStatus
	Detail   string // free-text failure reason, empty when healthy
	Observed time.Time
}

// ProxyNone is the proxy label for accounts with direct egress.
const ProxyNone = "none"
