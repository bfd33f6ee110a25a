package events

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/example/stealthprobe/internal/probe"
)

// Event types emitted over the lifetime of an audit run.
const (
	TypeAuditStart    = "audit-start"
	TypeProbeResult   = "probe-result"
	TypeReportWritten = "report-written"
	TypeAuditFinished = "audit-finished"
)

// Event represents a single NDJSON record for worker-friendly consumption.
type Event struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Message   string                 `json:"message,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// ProbeResult wraps one probe verdict as an event.
func ProbeResult(group string, r probe.Result) Event {
	return Event{
		Type:      TypeProbeResult,
		Timestamp: r.Timestamp,
		Fields: map[string]interface{}{
			"test":     r.Test,
			"group":    group,
			"passed":   r.Passed,
			"details":  r.Details,
			"severity": string(r.Severity),
		},
	}
}

// Emitter writes NDJSON events to an io.Writer safely across goroutines.
type Emitter struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewEmitter returns a new NDJSON emitter.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{writer: w}
}

// Emit serializes the event to JSON and appends a newline.
func (e *Emitter) Emit(evt Event) error {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.writer.Write(append(payload, '\n')); err != nil {
		return err
	}

	return nil
}
