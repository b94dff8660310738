package vidplugins

import (
	"fmt"

	"github.com/machinefabric/vidmod-go/frame"
	"github.com/machinefabric/vidmod-go/node"
	"github.com/machinefabric/vidmod-go/registry"
)

// Passthrough forwards every element from "in" to "out" unchanged. It
// exists to exercise a graph's middle stages in tests without any
// transform logic of its own, and as the minimal template for writing a
// one-in-one-out node kind.
type Passthrough struct {
	*node.Buffers

	kind     frame.FrameKind
	capacity int
}

// NewPassthrough builds a Passthrough moving elements of kind through "in"
// and "out" ports each buffered to capacity.
func NewPassthrough(b *node.Buffers, kind frame.FrameKind, capacity int) *Passthrough {
	return &Passthrough{Buffers: b, kind: kind, capacity: capacity}
}

func (p *Passthrough) Init() error {
	p.RegisterPushPort("in", p.kind, p.capacity)
	p.RegisterPullPort("out", p.kind, p.capacity)
	return nil
}

// Tick moves as many elements as fit from "in" to "out" in one step.
func (p *Passthrough) Tick() bool {
	avail := p.InbufAvail("in")
	room := p.capacity - p.OutbufAvail("out")
	n := avail
	if room < n {
		n = room
	}
	if n <= 0 {
		return false
	}
	p.OutbufPut("out", p.InbufGet("in", n))
	return true
}

// Finish reports whether "in" has nothing left to forward.
func (p *Passthrough) Finish() bool {
	return p.InbufAvail("in") == 0
}

func init() {
	registry.Global().Register("vidmod-plugins-core::Passthrough", func(b *node.Buffers, args map[string]any) (node.Node, error) {
		kindStr := argString(args, "kind", "U8")
		kind, err := frame.ParseFrameKind(kindStr)
		if err != nil {
			return nil, fmt.Errorf("vidplugins: Passthrough: %w", err)
		}
		capacity, err := argInt(args, "capacity", 16)
		if err != nil {
			return nil, err
		}
		return NewPassthrough(b, kind, capacity), nil
	}, "")
}
