package node

import (
	"fmt"

	"github.com/machinefabric/vidmod-go/frame"
)

// Buffers is the I/O substrate every node embeds. It owns one bounded Frame
// per registered port: push ports back inbound (received) buffers, pull
// ports back outbound (produced, not-yet-sent) buffers. Node authors never
// construct one directly — NewBuffers is called by whoever builds the graph
// (the project loader) before the plugin factory runs, with the id the
// graph will assign baked into every handle it mints.
type Buffers struct {
	nodeID int

	pull map[string]*frame.Frame // outbound: what this node has produced
	push map[string]*frame.Frame // inbound: what this node has received
}

// NewBuffers returns an empty substrate for the node identified by id.
func NewBuffers(id int) *Buffers {
	return &Buffers{
		nodeID: id,
		pull:   make(map[string]*frame.Frame),
		push:   make(map[string]*frame.Frame),
	}
}

// RegisterPullPort declares an output port of the given kind and buffer
// capacity. Calling it twice for the same name is a programmer error.
func (b *Buffers) RegisterPullPort(name string, kind frame.FrameKind, capacity int) {
	if _, exists := b.pull[name]; exists {
		panic(fmt.Sprintf("node: duplicate pull port %q", name))
	}
	b.pull[name] = frame.WithCapacity(kind, capacity)
}

// RegisterPushPort declares an input port of the given kind and buffer
// capacity. Calling it twice for the same name is a programmer error.
func (b *Buffers) RegisterPushPort(name string, kind frame.FrameKind, capacity int) {
	if _, exists := b.push[name]; exists {
		panic(fmt.Sprintf("node: duplicate push port %q", name))
	}
	b.push[name] = frame.WithCapacity(kind, capacity)
}

// GetPullPort looks up a previously registered output port by name,
// returning a handle carrying its kind. Fails with a recoverable error
// (not a panic) since this is a graph-build-time lookup driven by
// manifest-supplied names.
func (b *Buffers) GetPullPort(name string) (PullPort, error) {
	buf, ok := b.pull[name]
	if !ok {
		return PullPort{}, fmt.Errorf("no such pull port: %q", name)
	}
	return PullPort{NodeID: b.nodeID, Name: name, Kind: buf.Kind()}, nil
}

// GetPushPort looks up a previously registered input port by name,
// returning a handle carrying its kind.
func (b *Buffers) GetPushPort(name string) (PushPort, error) {
	buf, ok := b.push[name]
	if !ok {
		return PushPort{}, fmt.Errorf("no such push port: %q", name)
	}
	return PushPort{NodeID: b.nodeID, Name: name, Kind: buf.Kind()}, nil
}

// AttachPushPort validates that this node's push port named name can
// receive from peer, i.e. that the kinds agree. It does not wire anything;
// the graph holds the link, this call only validates it at build time.
func (b *Buffers) AttachPushPort(name string, peer PullPort) error {
	buf, ok := b.push[name]
	if !ok {
		return fmt.Errorf("no such push port: %q", name)
	}
	if buf.Kind() != peer.Kind {
		return fmt.Errorf("kind mismatch on push port %q: have %v, peer is %v", name, buf.Kind(), peer.Kind)
	}
	return nil
}

// AttachPullPort validates that this node's pull port named name can feed
// peer, i.e. that the kinds agree.
func (b *Buffers) AttachPullPort(name string, peer PushPort) error {
	buf, ok := b.pull[name]
	if !ok {
		return fmt.Errorf("no such pull port: %q", name)
	}
	if buf.Kind() != peer.Kind {
		return fmt.Errorf("kind mismatch on pull port %q: have %v, peer is %v", name, buf.Kind(), peer.Kind)
	}
	return nil
}

func (b *Buffers) pullBuf(port PullPort) *frame.Frame {
	buf, ok := b.pull[port.Name]
	if !ok {
		panic(fmt.Sprintf("node: no such pull port: %q", port.Name))
	}
	return buf
}

func (b *Buffers) pushBuf(port PushPort) *frame.Frame {
	buf, ok := b.push[port.Name]
	if !ok {
		panic(fmt.Sprintf("node: no such push port: %q", port.Name))
	}
	return buf
}

// ReadyToPull returns how many elements are currently available to pull
// from port.
func (b *Buffers) ReadyToPull(port PullPort) int {
	return b.pullBuf(port).Size()
}

// ReadyToPush returns how much free room remains in port for a push.
func (b *Buffers) ReadyToPush(port PushPort) int {
	buf := b.pushBuf(port)
	return buf.Capacity() - buf.Size()
}

// PullFrame drains exactly count elements from port's outbound buffer.
// count exceeding what is available is a programmer error (the caller is
// expected to have checked ReadyToPull first) — it panics rather than
// returning a short frame.
func (b *Buffers) PullFrame(port PullPort, count int) *frame.Frame {
	return b.pullBuf(port).Remove(count)
}

// PushFrame adds the whole of f's contents into port's inbound buffer.
// f not fitting is a programmer error (the caller is expected to have
// checked ReadyToPush first) — it panics rather than accepting a prefix
// and returning the remainder. Also panics if f's kind does not match
// port's.
func (b *Buffers) PushFrame(port PushPort, f *frame.Frame) {
	buf := b.pushBuf(port)
	if f.Kind() != buf.Kind() {
		panic(fmt.Sprintf("node: push kind mismatch on %q: have %v, got %v", port.Name, buf.Kind(), f.Kind()))
	}
	if !buf.Add(f) {
		panic(fmt.Sprintf("node: push_frame: port %q has no room for %d elements (size %d, capacity %d)",
			port.Name, f.Size(), buf.Size(), buf.Capacity()))
	}
}

// InbufAvail returns how many elements are queued in the named push port.
func (b *Buffers) InbufAvail(name string) int {
	return b.mustPush(name).Size()
}

// OutbufAvail returns how many elements are queued in the named pull port.
func (b *Buffers) OutbufAvail(name string) int {
	return b.mustPull(name).Size()
}

// InbufGet drains count elements from the named push port.
func (b *Buffers) InbufGet(name string, count int) *frame.Frame {
	return b.mustPush(name).Remove(count)
}

// InbufPeek returns a copy of the first count elements of the named push
// port without draining them.
func (b *Buffers) InbufPeek(name string, count int) *frame.Frame {
	return b.mustPush(name).Peek(count)
}

// InbufGetSingle pops one element from the named push port.
func (b *Buffers) InbufGetSingle(name string) (frame.FrameSingle, bool) {
	return b.mustPush(name).RemoveSingle()
}

// InbufGetAll drains the named push port entirely.
func (b *Buffers) InbufGetAll(name string) *frame.Frame {
	return b.mustPush(name).RemoveAll()
}

// OutbufPut appends f onto the named pull port's buffer. Panics if there
// is not enough room — node authors are expected to check OutbufAvail (or
// ReadyToPush on the downstream side, relayed by the scheduler) first.
func (b *Buffers) OutbufPut(name string, f *frame.Frame) {
	buf := b.mustPull(name)
	if !buf.Add(f) {
		panic(fmt.Sprintf("node: outbuf_put: port %q is full (size %d, capacity %d, tried to add %d)",
			name, buf.Size(), buf.Capacity(), f.Size()))
	}
}

// OutbufPutSingle appends one element onto the named pull port's buffer.
// Panics if the buffer is full.
func (b *Buffers) OutbufPutSingle(name string, s frame.FrameSingle) {
	buf := b.mustPull(name)
	if !buf.AddSingle(s) {
		panic(fmt.Sprintf("node: outbuf_put_single: port %q is full (capacity %d)", name, buf.Capacity()))
	}
}

func (b *Buffers) mustPull(name string) *frame.Frame {
	buf, ok := b.pull[name]
	if !ok {
		panic(fmt.Sprintf("node: no such pull port: %q", name))
	}
	return buf
}

func (b *Buffers) mustPush(name string) *frame.Frame {
	buf, ok := b.push[name]
	if !ok {
		panic(fmt.Sprintf("node: no such push port: %q", name))
	}
	return buf
}
