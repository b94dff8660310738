package node

import "github.com/machinefabric/vidmod-go/frame"

// PortHost is the set of port/buffer operations *Buffers provides. It
// exists so the graph package can drive ports without knowing the
// concrete node type — every Node satisfies PortHost automatically by
// embedding *Buffers.
type PortHost interface {
	NodeID() int
	GetPullPort(name string) (PullPort, error)
	GetPushPort(name string) (PushPort, error)
	AttachPushPort(name string, peer PullPort) error
	AttachPullPort(name string, peer PushPort) error
	ReadyToPull(port PullPort) int
	ReadyToPush(port PushPort) int
	PullFrame(port PullPort, count int) *frame.Frame
	PushFrame(port PushPort, f *frame.Frame)
}

// Node is the lifecycle contract every plugin implements. Authors embed
// *Buffers in their concrete type to pick up PortHost for free, and write
// Init/Tick/Finish against their own domain logic.
//
// Init runs once, right after the node is constructed and before any link
// is attached or the first Tick; it is where the node registers its ports.
// It returns an error for any condition the node
// can detect as misconfiguration (bad argument, missing resource); that
// error aborts the run at graph-build time.
//
// Tick runs once per scheduling pass in which the node is still active. It
// returns true if it did useful work (consumed or produced at least one
// frame, or otherwise made progress) and false if it was a no-op — the
// scheduler uses this to detect quiescence.
//
// Finish is called when the scheduler has determined no upstream of this
// node can ever produce more input. It gives the node a chance to drain
// any buffered state into its output ports. It returns true iff the node
// declares it will never do useful work again; it may return false to
// request more ticks if it still has buffered output to flush. Finish is
// called at most once per node per run.
type Node interface {
	PortHost
	Init() error
	Tick() bool
	Finish() bool
}

// NodeID returns the id a node's Buffers was constructed with.
func (b *Buffers) NodeID() int { return b.nodeID }
