package project

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/machinefabric/vidmod-go/graph"
	"github.com/machinefabric/vidmod-go/node"
	"github.com/machinefabric/vidmod-go/registry"
)

const manifestFileName = "manifest.yml"

// Project is a loaded, wired NodeGraph plus the run configuration it was
// loaded with.
type Project struct {
	graph *graph.NodeGraph
	opts  RunOptions
}

// Graph returns the underlying NodeGraph, for callers that want to drive
// it manually (tests, interactive tools) instead of calling Run.
func (p *Project) Graph() *graph.NodeGraph { return p.graph }

// Load reads <dir>/manifest.yml, instantiates each node through reg, and
// wires every link. Every plugin's args map is augmented with
// "vidmod.path" set to dir, matching the original contract.
func Load(dir string, reg *registry.Registry, opts ...RunOption) (*Project, error) {
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(filepath.Join(dir, manifestFileName))
	if err != nil {
		return nil, fmt.Errorf("project: open manifest: %w", err)
	}
	defer f.Close()

	manifest, err := decodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("project: decode manifest: %w", err)
	}

	g, err := buildGraph(manifest, dir, reg)
	if err != nil {
		return nil, err
	}

	o.logger.Info("project loaded", "dir", dir, "nodes", g.NodeCount())
	return &Project{graph: g, opts: o}, nil
}

// decodeManifest strictly decodes r as a ProjectManifest, rejecting any
// field not declared on ProjectManifest or its nested types (the Go
// equivalent of deny_unknown_fields).
func decodeManifest(r io.Reader) (*ProjectManifest, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(buf.Bytes()))
	dec.KnownFields(true)

	var m ProjectManifest
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func buildGraph(manifest *ProjectManifest, dir string, reg *registry.Registry) (*graph.NodeGraph, error) {
	g := graph.New()
	nodeIDs := make(map[string]int, len(manifest.Nodes))

	names := make([]string, 0, len(manifest.Nodes))
	for name := range manifest.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := manifest.Nodes[name]

		args := make(map[string]any, len(def.Args)+1)
		for k, v := range def.Args {
			args[k] = v
		}
		args["vidmod.path"] = dir

		id := g.NodeCount()
		buffers := node.NewBuffers(id)
		n, err := reg.Instantiate(def.Name, buffers, args)
		if err != nil {
			return nil, fmt.Errorf("project: node %q: %w", name, err)
		}
		if err := n.Init(); err != nil {
			return nil, fmt.Errorf("project: node %q: init: %w", name, err)
		}

		g.Insert(n, name)
		nodeIDs[name] = id
	}

	for _, link := range manifest.Links {
		fromID, ok := nodeIDs[link.From[0]]
		if !ok {
			return nil, fmt.Errorf("project: link references unknown node %q", link.From[0])
		}
		toID, ok := nodeIDs[link.To[0]]
		if !ok {
			return nil, fmt.Errorf("project: link references unknown node %q", link.To[0])
		}

		pull, err := g.GetPullPort(fromID, link.From[1])
		if err != nil {
			return nil, fmt.Errorf("project: link %s.%s: %w", link.From[0], link.From[1], err)
		}
		push, err := g.GetPushPort(toID, link.To[1])
		if err != nil {
			return nil, fmt.Errorf("project: link %s.%s: %w", link.To[0], link.To[1], err)
		}
		if err := g.AddLink(pull, push); err != nil {
			return nil, fmt.Errorf("project: link %s.%s -> %s.%s: %w",
				link.From[0], link.From[1], link.To[0], link.To[1], err)
		}
	}

	return g, nil
}
