package vidplugins

import (
	"github.com/machinefabric/vidmod-go/frame"
	"github.com/machinefabric/vidmod-go/node"
	"github.com/machinefabric/vidmod-go/registry"
)

// CounterSource emits the sequence 0, 1, 2, ... up to (but not including)
// count on its "out" port, then goes permanently quiescent. It is the
// generalization of original_source's TestSource (tests/common/mod.rs) to
// the real NodeBuffers substrate: that fixture hard-coded a single-element
// pull and an unbounded counter; this one is driven entirely by Tick and
// stops at a configured count.
type CounterSource struct {
	*node.Buffers

	count    int
	capacity int
	next     int
}

// NewCounterSource builds a CounterSource emitting count elements through
// an "out" port buffered to capacity.
func NewCounterSource(b *node.Buffers, count, capacity int) *CounterSource {
	return &CounterSource{Buffers: b, count: count, capacity: capacity}
}

func (s *CounterSource) Init() error {
	s.RegisterPullPort("out", frame.KindU16, s.capacity)
	return nil
}

// Tick emits one element per call while there is room and more to emit.
func (s *CounterSource) Tick() bool {
	if s.next >= s.count {
		return false
	}
	if s.OutbufAvail("out") >= s.capacity {
		return false
	}
	s.OutbufPutSingle("out", frame.U16Single(uint16(s.next)))
	s.next++
	return true
}

// Finish reports whether the source has nothing left to flush: true once
// every element has been emitted and the out buffer has drained.
func (s *CounterSource) Finish() bool {
	return s.next >= s.count && s.OutbufAvail("out") == 0
}

const counterSourceArgsSchema = `{
	"type": "object",
	"properties": {
		"count": {"type": "string", "pattern": "^[0-9]+$"},
		"capacity": {"type": "string", "pattern": "^[0-9]+$"}
	}
}`

func init() {
	registry.Global().Register("vidmod-plugins-core::CounterSource", func(b *node.Buffers, args map[string]any) (node.Node, error) {
		count, err := argInt(args, "count", 0)
		if err != nil {
			return nil, err
		}
		capacity, err := argInt(args, "capacity", 16)
		if err != nil {
			return nil, err
		}
		return NewCounterSource(b, count, capacity), nil
	}, counterSourceArgsSchema)
}
