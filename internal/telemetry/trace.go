// Package telemetry writes an optional CSV trace of game events.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/psychic-chicken/internal/core"
)

// Record is one row of the trace.
type Record struct {
	Tick      uint64  `csv:"tick"`
	Event     string  `csv:"event"`
	Level     int     `csv:"level"`
	Collected int     `csv:"collected"`
	Quota     int     `csv:"quota"`
	Eligible  int     `csv:"eligible"`
	Score     int     `csv:"score"`
	Reason    string  `csv:"reason"`
	Elapsed   float64 `csv:"elapsed_s"`
}

// Trace appends event records to a CSV stream.
// A nil *Trace is valid and discards everything.
type Trace struct {
	w      io.Writer
	closer io.Closer
	start  time.Time
	now    func() time.Time

	headerWritten bool
}

// NewTrace creates the trace file at path. Returns nil if path is empty (tracing disabled).
func NewTrace(path string) (*Trace, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("telemetry: creating trace directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating trace: %w", err)
	}

	t := NewTraceWriter(f)
	t.closer = f
	return t, nil
}

// NewTraceWriter creates a trace writing to w.
func NewTraceWriter(w io.Writer) *Trace {
	return &Trace{
		w:     w,
		start: time.Now(),
		now:   time.Now,
	}
}

// Record writes one row per event. State is the game state after the tick
// that produced the events.
func (t *Trace) Record(events []core.Event, state core.GameState, eligible int) error {
	if t == nil || len(events) == 0 {
		return nil
	}

	elapsed := t.now().Sub(t.start).Seconds()
	records := make([]Record, 0, len(events))
	for _, ev := range events {
		records = append(records, Record{
			Tick:      ev.Tick,
			Event:     string(ev.Kind),
			Level:     ev.Level,
			Collected: state.Collected,
			Quota:     state.Quota,
			Eligible:  eligible,
			Score:     state.Score,
			Reason:    ev.Reason,
			Elapsed:   elapsed,
		})
	}

	if !t.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, t.w); err != nil {
			return fmt.Errorf("telemetry: writing trace: %w", err)
		}
		t.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, t.w); err != nil {
		return fmt.Errorf("telemetry: writing trace: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the trace owns one.
func (t *Trace) Close() error {
	if t == nil || t.closer == nil {
		return nil
	}
	return t.closer.Close()
}
