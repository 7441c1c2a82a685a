// Package progress adapts the teacher's ComponentStatus/ComponentGroup/
// ProgressTracker trio (internal/models/types.go) to the engine's
// pipeline stages. The SSE transport the teacher drove this through is
// out of scope here; the tracker instead feeds a plain Go channel a CLI
// or embedding caller can range over, keeping the same heartbeat-backed,
// panic-safe send discipline.
package progress

import (
	"context"
	"time"
)

// Status mirrors the teacher's ComponentStatus.
type Status string

const (
	StatusInitiated Status = "initiated"
	StatusRunning   Status = "running"
	StatusFinished  Status = "finished"
	StatusError     Status = "error"
)

// Stage names the engine's pipeline stages, replacing the teacher's
// enrichment/analysis groupings with the build pipeline's own.
type Stage string

const (
	StageSegment  Stage = "segment"
	StageParse    Stage = "parse"
	StageResolve  Stage = "resolve"
	StageBuild    Stage = "build"
	StageSimulate Stage = "simulate"
)

// Update is a single stage's status change.
type Update struct {
	RequestID   string
	Stage       Stage
	Status      Status
	Description string
	Timestamp   time.Time
	StartTime   time.Time
	DurationMS  int64
}

// Tracker emits Updates for one request's pipeline run.
type Tracker struct {
	requestID  string
	updateChan chan<- Update
	startTimes map[Stage]time.Time
	ctx        context.Context
	cancel     context.CancelFunc
}

// New creates a tracker bound to a single request. updateChan may be
// nil, in which case updates are computed but not delivered anywhere —
// useful when a caller only wants the final result.
func New(requestID string, updateChan chan<- Update) *Tracker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Tracker{
		requestID:  requestID,
		updateChan: updateChan,
		startTimes: make(map[Stage]time.Time),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Close stops the tracker from sending further updates.
func (t *Tracker) Close() { t.cancel() }

// Update records a stage transition and sends it, recovering if the
// caller's channel has already been closed.
func (t *Tracker) Update(stage Stage, status Status, description string) {
	now := time.Now()
	start, seen := t.startTimes[stage]
	if !seen {
		start = now
		t.startTimes[stage] = now
	}
	var duration int64
	if seen {
		duration = now.Sub(start).Milliseconds()
	}

	update := Update{
		RequestID:   t.requestID,
		Stage:       stage,
		Status:      status,
		Description: description,
		Timestamp:   now,
		StartTime:   start,
		DurationMS:  duration,
	}

	select {
	case <-t.ctx.Done():
		return
	default:
		t.send(update)
	}
}

func (t *Tracker) send(update Update) {
	defer func() {
		if recover() != nil {
			t.cancel()
		}
	}()
	if t.updateChan == nil {
		return
	}
	select {
	case t.updateChan <- update:
	case <-t.ctx.Done():
	}
}
