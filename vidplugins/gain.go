package vidplugins

import (
	"github.com/machinefabric/vidmod-go/frame"
	"github.com/machinefabric/vidmod-go/node"
	"github.com/machinefabric/vidmod-go/registry"
)

// Gain scales every U8 element it receives by a constant factor, clamping
// the result to the U8 range instead of wrapping — the one arithmetic
// transform built into vidplugins, standing in for the original's signal
// processing nodes (RawFileSource and friends live in a plugin crate the
// retrieval pack never included; Gain is the smallest representative
// sample-processing node that exercises the same port shape).
type Gain struct {
	*node.Buffers

	factor   float64
	capacity int
}

// NewGain builds a Gain multiplying each U8 sample by factor.
func NewGain(b *node.Buffers, factor float64, capacity int) *Gain {
	return &Gain{Buffers: b, factor: factor, capacity: capacity}
}

func (g *Gain) Init() error {
	g.RegisterPushPort("in", frame.KindU8, g.capacity)
	g.RegisterPullPort("out", frame.KindU8, g.capacity)
	return nil
}

// Tick scales one element per call, clamping at 255.
func (g *Gain) Tick() bool {
	if g.OutbufAvail("out") >= g.capacity {
		return false
	}
	v, ok := g.InbufGetSingle("in")
	if !ok {
		return false
	}
	scaled := float64(v.UnwrapU8()) * g.factor
	if scaled > 255 {
		scaled = 255
	}
	if scaled < 0 {
		scaled = 0
	}
	g.OutbufPutSingle("out", frame.U8Single(uint8(scaled)))
	return true
}

// Finish reports whether "in" has nothing left to process.
func (g *Gain) Finish() bool {
	return g.InbufAvail("in") == 0
}

func init() {
	registry.Global().Register("vidmod-plugins-core::Gain", func(b *node.Buffers, args map[string]any) (node.Node, error) {
		factor, err := argFloat(args, "gain", 1.0)
		if err != nil {
			return nil, err
		}
		capacity, err := argInt(args, "capacity", 16)
		if err != nil {
			return nil, err
		}
		return NewGain(b, factor, capacity), nil
	}, "")
}
