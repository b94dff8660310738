package vidplugins

import (
	"fmt"

	"github.com/machinefabric/vidmod-go/frame"
	"github.com/machinefabric/vidmod-go/node"
	"github.com/machinefabric/vidmod-go/registry"
)

// Tee duplicates every element received on "in" onto both "out1" and
// "out2". An element is only consumed from "in" once there is room for it
// on both outputs, so a stalled downstream on either branch backpressures
// the whole node — the same all-or-nothing transfer discipline the
// scheduler applies to a single link, generalized to two.
type Tee struct {
	*node.Buffers

	kind     frame.FrameKind
	capacity int
}

// NewTee builds a Tee duplicating elements of kind across two outputs
// each buffered to capacity.
func NewTee(b *node.Buffers, kind frame.FrameKind, capacity int) *Tee {
	return &Tee{Buffers: b, kind: kind, capacity: capacity}
}

func (t *Tee) Init() error {
	t.RegisterPushPort("in", t.kind, t.capacity)
	t.RegisterPullPort("out1", t.kind, t.capacity)
	t.RegisterPullPort("out2", t.kind, t.capacity)
	return nil
}

// Tick moves as many elements as fit on both branches at once from "in".
func (t *Tee) Tick() bool {
	n := t.InbufAvail("in")
	if room := t.capacity - t.OutbufAvail("out1"); room < n {
		n = room
	}
	if room := t.capacity - t.OutbufAvail("out2"); room < n {
		n = room
	}
	if n <= 0 {
		return false
	}

	t.OutbufPut("out1", t.InbufPeek("in", n))
	t.OutbufPut("out2", t.InbufPeek("in", n))
	t.InbufGet("in", n)
	return true
}

// Finish reports whether "in" has nothing left to duplicate.
func (t *Tee) Finish() bool {
	return t.InbufAvail("in") == 0
}

func init() {
	registry.Global().Register("vidmod-plugins-core::Tee", func(b *node.Buffers, args map[string]any) (node.Node, error) {
		kindStr := argString(args, "kind", "U8")
		kind, err := frame.ParseFrameKind(kindStr)
		if err != nil {
			return nil, fmt.Errorf("vidplugins: Tee: %w", err)
		}
		capacity, err := argInt(args, "capacity", 16)
		if err != nil {
			return nil, err
		}
		return NewTee(b, kind, capacity), nil
	}, "")
}
