// Package graph implements NodeGraph and Scheduler: the structure holding
// nodes and links, and the two-phase fixed-point tick loop with its
// finish/prune termination protocol. See spec.md §3.6/§4.6.
//
// The graph is assumed to be acyclic. Cycles are not rejected: nodes on a
// cycle keep each other in the active set, so the scheduler never prunes
// or finishes them, and Run returns once the rest of the graph is idle.
package graph

import (
	"fmt"

	"github.com/machinefabric/vidmod-go/node"
)

// Link is a validated (pull, push) pair recorded by AddLink. Insertion
// order is part of the tick contract — tickLinks visits links in the
// order they were added.
type Link struct {
	Pull node.PullPort
	Push node.PushPort
}

// NodeGraph owns nodes by a stable integer id (their index), parallel
// names for diagnostics, and the list of links between them. It knows
// nothing about scheduling policy — that lives in Scheduler.
type NodeGraph struct {
	nodes     []node.Node
	nodeNames []string
	links     []Link
}

// New returns an empty graph.
func New() *NodeGraph {
	return &NodeGraph{}
}

// Insert adds n under name and returns its id. n.NodeID() must equal the
// assigned id — the caller constructs n's Buffers with NewBuffers(id)
// using the id this graph is about to hand out, i.e. len(nodes) before
// the call. A mismatch is a programmer error: ids must be stable and
// dense from zero.
func (g *NodeGraph) Insert(n node.Node, name string) int {
	id := len(g.nodes)
	if n.NodeID() != id {
		panic(fmt.Sprintf("graph: node %q constructed with id %d, expected %d", name, n.NodeID(), id))
	}
	g.nodes = append(g.nodes, n)
	g.nodeNames = append(g.nodeNames, name)
	return id
}

// NodeCount returns how many nodes are in the graph.
func (g *NodeGraph) NodeCount() int { return len(g.nodes) }

// NodeName returns the diagnostic name given to id at Insert.
func (g *NodeGraph) NodeName(id int) string { return g.nodeNames[id] }

// GetPullPort looks up a pull port by node id and name.
func (g *NodeGraph) GetPullPort(id int, name string) (node.PullPort, error) {
	return g.nodes[id].GetPullPort(name)
}

// GetPushPort looks up a push port by node id and name.
func (g *NodeGraph) GetPushPort(id int, name string) (node.PushPort, error) {
	return g.nodes[id].GetPushPort(name)
}

// AddLink validates pull and push against both endpoints' attach rules
// and, on success, records the link. Both nodes' attach validators run
// before the link is recorded — a kind mismatch leaves the graph
// unmodified.
func (g *NodeGraph) AddLink(pull node.PullPort, push node.PushPort) error {
	pullNode := g.nodes[pull.NodeID]
	pushNode := g.nodes[push.NodeID]

	if err := pullNode.AttachPullPort(pull.Name, push); err != nil {
		return fmt.Errorf("graph: link %s.%s -> %s.%s: %w",
			g.nodeNames[pull.NodeID], pull.Name, g.nodeNames[push.NodeID], push.Name, err)
	}
	if err := pushNode.AttachPushPort(push.Name, pull); err != nil {
		return fmt.Errorf("graph: link %s.%s -> %s.%s: %w",
			g.nodeNames[pull.NodeID], pull.Name, g.nodeNames[push.NodeID], push.Name, err)
	}

	g.links = append(g.links, Link{Pull: pull, Push: push})
	return nil
}

// Tick runs one scheduler step: tick_nodes over every node, then
// tick_links over every link. It returns the OR of both phases; both
// phases always run regardless of the other's result.
func (g *NodeGraph) Tick() bool {
	nodesProgressed := g.tickNodes(nil)
	linksProgressed := g.tickLinks()
	return nodesProgressed || linksProgressed
}

// tickNodes calls Tick on every node in active (or every node, if active
// is nil), in ascending id order, returning the OR of their results.
func (g *NodeGraph) tickNodes(active map[int]bool) bool {
	progress := false
	for id, n := range g.nodes {
		if active != nil && !active[id] {
			continue
		}
		if n.Tick() {
			progress = true
		}
	}
	return progress
}

// tickLinks transfers whatever is possible across every link, in
// insertion order, regardless of node activity — residual buffered
// output from an already-pruned producer is still delivered downstream.
func (g *NodeGraph) tickLinks() bool {
	progress := false
	for _, l := range g.links {
		pullNode := g.nodes[l.Pull.NodeID]
		pushNode := g.nodes[l.Push.NodeID]

		count := pullNode.ReadyToPull(l.Pull)
		if room := pushNode.ReadyToPush(l.Push); room < count {
			count = room
		}
		if count <= 0 {
			continue
		}

		f := pullNode.PullFrame(l.Pull, count)
		pushNode.PushFrame(l.Push, f)
		progress = true
	}
	return progress
}

// prune computes the new active set from activePrev: a node stays active
// iff it is the push end of some link whose pull end is in activePrev.
// Nodes that are never a link's push end (pure sources) drop out on the
// first prune.
func (g *NodeGraph) prune(activePrev map[int]bool) map[int]bool {
	next := make(map[int]bool)
	for _, l := range g.links {
		if activePrev[l.Pull.NodeID] {
			next[l.Push.NodeID] = true
		}
	}
	return next
}
