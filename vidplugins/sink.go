package vidplugins

import (
	"github.com/machinefabric/vidmod-go/frame"
	"github.com/machinefabric/vidmod-go/node"
	"github.com/machinefabric/vidmod-go/registry"
)

// CollectorSink drains its "in" port one element at a time and appends
// each to an in-memory slice, for inspection after a run (e.g. by tests).
// Grounded on original_source's TestSink, generalized past
// its hard-coded single-u16-per-tick assertion.
type CollectorSink struct {
	*node.Buffers

	capacity int
	got      []uint16
}

// NewCollectorSink builds a CollectorSink with an "in" port buffered to
// capacity.
func NewCollectorSink(b *node.Buffers, capacity int) *CollectorSink {
	return &CollectorSink{Buffers: b, capacity: capacity}
}

func (s *CollectorSink) Init() error {
	s.RegisterPushPort("in", frame.KindU16, s.capacity)
	return nil
}

// Tick drains one element, recording it. Reports whether it made progress.
func (s *CollectorSink) Tick() bool {
	v, ok := s.InbufGetSingle("in")
	if !ok {
		return false
	}
	s.got = append(s.got, v.UnwrapU16())
	return true
}

// Finish reports true unconditionally: a sink has nothing left to flush.
func (s *CollectorSink) Finish() bool { return true }

// Collected returns a copy of every element received so far, in arrival
// order.
func (s *CollectorSink) Collected() []uint16 {
	out := make([]uint16, len(s.got))
	copy(out, s.got)
	return out
}

func init() {
	registry.Global().Register("vidmod-plugins-core::CollectorSink", func(b *node.Buffers, args map[string]any) (node.Node, error) {
		capacity, err := argInt(args, "capacity", 16)
		if err != nil {
			return nil, err
		}
		return NewCollectorSink(b, capacity), nil
	}, "")
}
