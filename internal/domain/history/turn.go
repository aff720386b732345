// Package history tracks which past turns are known, available, or fully
// loaded, and owns the bookkeeping around asynchronous turn loading.
package history

import (
	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// Status is the lifecycle state of one historical turn entry
type Status int

const (
	// StatusUnknown means nothing is known about this turn yet
	StatusUnknown Status = iota

	// StatusUnavailable means the turn cannot be loaded
	StatusUnavailable

	// StatusStronglyAvailable means the loader promised this turn exists
	StatusStronglyAvailable

	// StatusWeaklyAvailable means the turn probably exists
	StatusWeaklyAvailable

	// StatusFailed means a strongly promised load did not deliver
	StatusFailed

	// StatusLoaded means a full snapshot is attached
	StatusLoaded
)

// String returns a human-readable status name
func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusUnavailable:
		return "unavailable"
	case StatusStronglyAvailable:
		return "available"
	case StatusWeaklyAvailable:
		return "maybe available"
	case StatusFailed:
		return "failed"
	case StatusLoaded:
		return "loaded"
	default:
		return "invalid"
	}
}

// Turn tracks the load state of one historical turn number. Once a snapshot
// has been attached it is never replaced or cleared; the snapshot itself is
// shared with whatever handed it over.
type Turn struct {
	turnNumber int
	status     Status
	timestamp  shared.Timestamp
	snapshot   *game.Turn
}

// NewTurn creates an entry in Unknown state
func NewTurn(turnNumber int) *Turn {
	return &Turn{turnNumber: turnNumber, status: StatusUnknown}
}

// TurnNumber returns the turn number
func (t *Turn) TurnNumber() int {
	return t.turnNumber
}

// Status returns the current lifecycle status
func (t *Turn) Status() Status {
	return t.status
}

// SetStatus sets the status directly. This is not gated by the state
// machine; callers are responsible for not violating the invariants.
func (t *Turn) SetStatus(status Status) {
	t.status = status
}

// Timestamp returns the turn's host timestamp, invalid if not known yet
func (t *Turn) Timestamp() shared.Timestamp {
	return t.timestamp
}

// SetTimestamp records the turn's host timestamp
func (t *Turn) SetTimestamp(timestamp shared.Timestamp) {
	t.timestamp = timestamp
}

// Snapshot returns the attached turn snapshot, nil while not loaded
func (t *Turn) Snapshot() *game.Turn {
	return t.snapshot
}

// IsLoadable reports whether a load attempt still makes sense: no snapshot
// attached yet, and the status does not rule the turn out.
func (t *Turn) IsLoadable() bool {
	if t.snapshot != nil {
		return false
	}
	switch t.status {
	case StatusUnknown, StatusWeaklyAvailable, StatusStronglyAvailable:
		return true
	default:
		return false
	}
}

// HandleLoadSucceeded attaches a loaded snapshot and takes its timestamp.
// No-op if the entry is not loadable.
func (t *Turn) HandleLoadSucceeded(snapshot *game.Turn) {
	if !t.IsLoadable() || snapshot == nil {
		return
	}
	t.snapshot = snapshot
	t.status = StatusLoaded
	t.timestamp = snapshot.Timestamp()
}

// HandleLoadFailed records a failed load attempt. A broken strong promise
// becomes Failed; a disappointed guess merely becomes Unavailable.
// No-op if the entry is not loadable.
func (t *Turn) HandleLoadFailed() {
	if !t.IsLoadable() {
		return
	}
	if t.status == StatusStronglyAvailable {
		t.status = StatusFailed
	} else {
		t.status = StatusUnavailable
	}
}
