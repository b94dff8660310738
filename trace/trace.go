// Package trace implements an opt-in, one-way diagnostics recorder: a
// CBOR-encoded stream of scheduler events (tick/transfer/finish) written
// to an io.Writer for offline inspection. It is purely observational —
// nothing in graph or project reads a trace back, and a failure to
// record never aborts a run (see Err).
//
// This repurposes the teacher's bifaci CBOR wire-frame encoding from a
// two-way RPC protocol to a one-way append-only event log; the RPC
// framing itself (Hello/Chunk/StreamStart handshake machinery) belongs to
// a multi-process use case this runtime does not have.
package trace

import (
	"io"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// EventKind discriminates the three event shapes a Recorder emits.
type EventKind uint8

const (
	EventTick EventKind = iota
	EventTransfer
	EventFinish
)

// Event is one CBOR-encoded record. Only the fields relevant to Kind are
// populated; the rest are zero.
type Event struct {
	Seq   uint64    `cbor:"seq"`
	RunID string    `cbor:"run_id"`
	Kind  EventKind `cbor:"kind"`

	// EventTick
	NodesProgressed bool `cbor:"nodes_progressed,omitempty"`
	LinksProgressed bool `cbor:"links_progressed,omitempty"`

	// EventTransfer
	PullNodeID int    `cbor:"pull_node_id,omitempty"`
	PullName   string `cbor:"pull_name,omitempty"`
	PushNodeID int    `cbor:"push_node_id,omitempty"`
	PushName   string `cbor:"push_name,omitempty"`
	Count      int    `cbor:"count,omitempty"`

	// EventFinish
	NodeID   int  `cbor:"node_id,omitempty"`
	Terminal bool `cbor:"terminal,omitempty"`
}

// Recorder implements graph.TraceSink, encoding each event as a CBOR item
// appended to the underlying writer. Safe for concurrent use, though the
// scheduler that drives it is single-threaded.
type Recorder struct {
	mu  sync.Mutex
	enc *cbor.Encoder
	seq uint64
	err error
}

// NewRecorder wraps w, ready to accept events.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: cbor.NewEncoder(w)}
}

// Err returns the first encode error encountered, if any. A Recorder
// keeps accepting events after an error (it never blocks the scheduler);
// callers that care should check Err once the run is done.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.Seq = r.seq
	r.seq++
	if err := r.enc.Encode(e); err != nil && r.err == nil {
		r.err = err
	}
}

// Tick records one scheduler step's progress flags.
func (r *Recorder) Tick(runID string, nodesProgressed, linksProgressed bool) {
	r.record(Event{
		RunID:           runID,
		Kind:            EventTick,
		NodesProgressed: nodesProgressed,
		LinksProgressed: linksProgressed,
	})
}

// Transfer records one link transfer.
func (r *Recorder) Transfer(runID string, pullNodeID int, pullName string, pushNodeID int, pushName string, count int) {
	r.record(Event{
		RunID:      runID,
		Kind:       EventTransfer,
		PullNodeID: pullNodeID,
		PullName:   pullName,
		PushNodeID: pushNodeID,
		PushName:   pushName,
		Count:      count,
	})
}

// Finish records one node's finish-step outcome.
func (r *Recorder) Finish(runID string, nodeID int, terminal bool) {
	r.record(Event{
		RunID:    runID,
		Kind:     EventFinish,
		NodeID:   nodeID,
		Terminal: terminal,
	})
}
