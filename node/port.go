// Package node defines the node port/buffer protocol: typed pull/push port
// handles, the NodeBuffers substrate every node embeds, and the Node
// lifecycle contract nodes implement. See spec.md §3.4–§3.6 and §4.3–§4.4.
package node

import "github.com/machinefabric/vidmod-go/frame"

// PullPort is a handle identifying one node's output port: the tuple
// (node id, port name, kind). Handles are plain values — freely copyable,
// comparable, and safe to store in a link — and carry no reference back to
// the node they name.
type PullPort struct {
	NodeID int
	Name   string
	Kind   frame.FrameKind
}

// PushPort is a handle identifying one node's input port, shaped
// identically to PullPort.
type PushPort struct {
	NodeID int
	Name   string
	Kind   frame.FrameKind
}
