package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machinefabric/vidmod-go/frame"
	"github.com/machinefabric/vidmod-go/node"
)

// counterSource emits U16 0..n-1, one element per tick, then requests
// finish and declares itself immediately done (it has nothing to flush).
type counterSource struct {
	*node.Buffers
	n      int
	next   int
	outCap int
}

func newCounterSource(id, n, outCap int) *counterSource {
	s := &counterSource{Buffers: node.NewBuffers(id), n: n, outCap: outCap}
	s.RegisterPullPort("out", frame.KindU16, outCap)
	return s
}

func (s *counterSource) Init() error { return nil }

func (s *counterSource) Tick() bool {
	if s.next >= s.n {
		return false
	}
	if s.OutbufAvail("out") >= s.outCap {
		return false
	}
	s.OutbufPutSingle("out", frame.U16Single(uint16(s.next)))
	s.next++
	return true
}

func (s *counterSource) Finish() bool { return true }

// collectorSink gathers every element pushed to it, in order.
type collectorSink struct {
	*node.Buffers
	inCap int
	got   []uint16
}

func newCollectorSink(id, inCap int) *collectorSink {
	s := &collectorSink{Buffers: node.NewBuffers(id), inCap: inCap}
	s.RegisterPushPort("in", frame.KindU16, inCap)
	return s
}

func (s *collectorSink) Init() error { return nil }

func (s *collectorSink) Tick() bool {
	v, ok := s.InbufGetSingle("in")
	if !ok {
		return false
	}
	s.got = append(s.got, v.UnwrapU16())
	return true
}

func (s *collectorSink) Finish() bool { return true }

func buildSourceSink(t *testing.T, n, outCap, inCap int) (*NodeGraph, *counterSource, *collectorSink) {
	t.Helper()
	g := New()

	src := newCounterSource(0, n, outCap)
	g.Insert(src, "src")

	sink := newCollectorSink(1, inCap)
	g.Insert(sink, "sink")

	pull, err := g.GetPullPort(0, "out")
	require.NoError(t, err)
	push, err := g.GetPushPort(1, "in")
	require.NoError(t, err)
	require.NoError(t, g.AddLink(pull, push))

	return g, src, sink
}

// S1: unit source -> sink, ticked manually to quiescence.
func TestTickDeliversAllElementsInOrder(t *testing.T) {
	g, _, sink := buildSourceSink(t, 8, 8, 8)

	for g.Tick() {
	}

	assert.Equal(t, []uint16{0, 1, 2, 3, 4, 5, 6, 7}, sink.got)
}

// S2: link between mismatched kinds is a recoverable error, not a panic.
func TestAddLinkKindMismatchIsError(t *testing.T) {
	g := New()
	src := newCounterSource(0, 4, 4)
	g.Insert(src, "src")

	sink := &collectorSink{Buffers: node.NewBuffers(1), inCap: 4}
	sink.RegisterPushPort("in", frame.KindU8, 4)
	g.Insert(sink, "sink")

	pull, err := g.GetPullPort(0, "out")
	require.NoError(t, err)
	push, err := g.GetPushPort(1, "in")
	require.NoError(t, err)

	err = g.AddLink(pull, push)
	assert.Error(t, err)
}

// S3: looking up a port name that was never registered is an error.
func TestGetPullPortUnknownNameIsError(t *testing.T) {
	g := New()
	src := newCounterSource(0, 4, 4)
	g.Insert(src, "src")

	_, err := g.GetPullPort(0, "nope")
	assert.Error(t, err)
}

// S4: a sink-only node has no pull port to get.
func TestGetPullPortOnSinkOnlyNodeIsError(t *testing.T) {
	g := New()
	sink := newCollectorSink(0, 4)
	g.Insert(sink, "sink")

	_, err := g.GetPullPort(0, "out")
	assert.Error(t, err)
}

// S5: a source that emits exactly 3 elements and finishes, against a
// sink with input capacity 1, delivers exactly 3 elements in order and
// terminates under Run().
func TestRunDrainsThroughBackpressureAndTerminates(t *testing.T) {
	g, _, sink := buildSourceSink(t, 3, 3, 1)

	NewScheduler(g).Run()

	assert.Equal(t, []uint16{0, 1, 2}, sink.got)
}

// Invariant 7/8: after quiescence, a further Tick is still false, and a
// pure source with no inbound link is pruned on the first prune step.
func TestQuiescenceIsStable(t *testing.T) {
	g, _, _ := buildSourceSink(t, 2, 2, 2)

	for g.Tick() {
	}
	assert.False(t, g.Tick())
	assert.False(t, g.Tick())
}

func TestPruneDropsPureSourceFirst(t *testing.T) {
	g, _, _ := buildSourceSink(t, 2, 2, 2)

	all := map[int]bool{0: true, 1: true}
	next := g.prune(all)

	assert.False(t, next[0], "pure source has no inbound link and must drop on first prune")
}
