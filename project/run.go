package project

import (
	"fmt"
	"os"

	"github.com/machinefabric/vidmod-go/graph"
	"github.com/machinefabric/vidmod-go/trace"
)

// Run drives the project's graph. With no tick budget configured it runs
// to quiescence via the fixed-point finish/prune protocol
// (graph.Scheduler.Run); with a budget it drives at most that many ticks,
// for tests that want to inspect a partially-run graph. If a trace path
// was configured, every tick/transfer/finish event is appended there as
// CBOR, regardless of which mode is used.
func (p *Project) Run() error {
	var sink graph.TraceSink
	if p.opts.tracePath != "" {
		f, err := os.Create(p.opts.tracePath)
		if err != nil {
			return fmt.Errorf("project: open trace file: %w", err)
		}
		defer f.Close()
		rec := trace.NewRecorder(f)
		sink = rec
		defer func() {
			if err := rec.Err(); err != nil {
				p.opts.logger.Warn("trace recorder error", "err", err)
			}
		}()
	}

	sched := graph.NewScheduler(p.graph, graph.WithLogger(p.opts.logger), graph.WithTraceSink(sink))

	if p.opts.tickBudget > 0 {
		for i := 0; i < p.opts.tickBudget; i++ {
			if !sched.Tick() {
				break
			}
		}
		return nil
	}

	sched.Run()
	return nil
}
