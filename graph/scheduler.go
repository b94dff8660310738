package graph

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"
)

// TraceSink receives scheduling events for offline inspection. It never
// influences scheduling — a nil TraceSink (the default) costs nothing.
// trace.Recorder implements this interface structurally.
type TraceSink interface {
	Tick(runID string, nodesProgressed, linksProgressed bool)
	Transfer(runID string, pullNodeID int, pullName string, pushNodeID int, pushName string, count int)
	Finish(runID string, nodeID int, terminal bool)
}

// Scheduler drives a NodeGraph's fixed-point run loop (spec.md §4.6.2).
type Scheduler struct {
	graph  *NodeGraph
	logger *slog.Logger
	trace  TraceSink
	runID  string
}

// Option configures a Scheduler at construction.
type Option func(*Scheduler)

// WithLogger overrides the default slog.Default() logger. A nil l keeps
// the default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTraceSink attaches an event sink (e.g. trace.Recorder). Passing nil
// is equivalent to omitting the option.
func WithTraceSink(sink TraceSink) Option {
	return func(s *Scheduler) { s.trace = sink }
}

// NewScheduler wraps g with a fresh run identity.
func NewScheduler(g *NodeGraph, opts ...Option) *Scheduler {
	s := &Scheduler{
		graph:  g,
		logger: slog.Default(),
		runID:  uuid.New().String(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunID returns the correlation id this scheduler tags its logs and trace
// events with.
func (s *Scheduler) RunID() string { return s.runID }

// Tick runs one scheduler step (tick_nodes over every node, then
// tick_links), tracing it if a TraceSink is attached. For callers that
// want to drive the loop themselves (tests, interactive use) instead of
// calling Run.
func (s *Scheduler) Tick() bool {
	nodesProgressed := s.graph.tickNodes(nil)
	linksProgressed := s.tickLinksTraced()
	if s.trace != nil {
		s.trace.Tick(s.runID, nodesProgressed, linksProgressed)
	}
	return nodesProgressed || linksProgressed
}

// Run drives the graph to completion: repeated inner loops (tick_nodes +
// tick_links to a local fixed point), a prune step that drops nodes whose
// every upstream producer has gone inactive, and a finish step that gives
// newly-pruned nodes a chance to flush. It returns once a full outer pass
// makes no progress at all.
func (s *Scheduler) Run() {
	active := make(map[int]bool, s.graph.NodeCount())
	for id := 0; id < s.graph.NodeCount(); id++ {
		active[id] = true
	}

	for {
		progress := s.innerLoop(active)

		prevActive := active
		nextActive := s.graph.prune(prevActive)
		pruned := sortedDiff(prevActive, nextActive)

		for _, id := range pruned {
			n := s.graph.nodes[id]
			terminal := n.Finish()
			if s.trace != nil {
				s.trace.Finish(s.runID, id, terminal)
			}
			if !terminal {
				for s.innerLoop(prevActive) {
				}
			}
		}

		active = nextActive
		if !progress && len(pruned) == 0 {
			s.logger.Debug("scheduler run complete", "run_id", s.runID, "nodes", s.graph.NodeCount())
			return
		}
	}
}

// innerLoop runs tick_nodes(active) + tick_links() to a local fixed
// point, returning whether it ran at least one productive iteration.
func (s *Scheduler) innerLoop(active map[int]bool) bool {
	any := false
	for {
		nodesProgressed := s.graph.tickNodes(active)
		linksProgressed := s.tickLinksTraced()
		if s.trace != nil {
			s.trace.Tick(s.runID, nodesProgressed, linksProgressed)
		}
		if !nodesProgressed && !linksProgressed {
			return any
		}
		any = true
	}
}

func (s *Scheduler) tickLinksTraced() bool {
	if s.trace == nil {
		return s.graph.tickLinks()
	}
	progress := false
	for _, l := range s.graph.links {
		pullNode := s.graph.nodes[l.Pull.NodeID]
		pushNode := s.graph.nodes[l.Push.NodeID]

		count := pullNode.ReadyToPull(l.Pull)
		if room := pushNode.ReadyToPush(l.Push); room < count {
			count = room
		}
		if count <= 0 {
			continue
		}

		f := pullNode.PullFrame(l.Pull, count)
		pushNode.PushFrame(l.Push, f)
		s.trace.Transfer(s.runID, l.Pull.NodeID, l.Pull.Name, l.Push.NodeID, l.Push.Name, count)
		progress = true
	}
	return progress
}

// sortedDiff returns the ids present (true) in prev but absent (or
// false) in next, in ascending order.
func sortedDiff(prev, next map[int]bool) []int {
	var ids []int
	for id, ok := range prev {
		if ok && !next[id] {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
