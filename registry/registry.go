// Package registry implements the plugin registry: a process-wide,
// read-after-build map from plugin type name to a factory that builds a
// node.Node. See spec.md §3.7/§4.5.
package registry

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/machinefabric/vidmod-go/node"
)

// Factory builds one node instance. buffers is an empty substrate carrying
// the node's id; the node's Init registers its ports on it later — the
// factory itself only needs to stash it and interpret args.
type Factory func(buffers *node.Buffers, args map[string]any) (node.Node, error)

type entry struct {
	factory    Factory
	argsSchema string // JSON Schema text; empty means "no validation"
}

// Registry is a name -> factory map. The zero value is not usable; build
// one with New. A Registry is safe for concurrent Register/Instantiate
// calls, though in practice registration happens once at startup and
// instantiation once per graph build.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds factory under name. argsSchema, if non-empty, is a JSON
// Schema (draft-7) that every Instantiate call's args must satisfy before
// the factory runs. Registering the same name twice is a programmer error.
func (r *Registry) Register(name string, factory Factory, argsSchema string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("registry: duplicate plugin name %q", name))
	}
	r.entries[name] = entry{factory: factory, argsSchema: argsSchema}
}

// Names returns every registered plugin name, for diagnostics.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	return out
}

// Instantiate looks up name, validates args against its schema if one was
// registered, and runs its factory. It returns a recoverable error (never
// a panic) on an unknown name, a schema violation, or a factory error —
// all three are configuration errors caught at graph-build time.
func (r *Registry) Instantiate(name string, buffers *node.Buffers, args map[string]any) (node.Node, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: no such plugin: %q", name)
	}

	if e.argsSchema != "" {
		if err := validateArgs(e.argsSchema, args); err != nil {
			return nil, fmt.Errorf("registry: plugin %q: %w", name, err)
		}
	}

	n, err := e.factory(buffers, args)
	if err != nil {
		return nil, fmt.Errorf("registry: plugin %q: %w", name, err)
	}
	return n, nil
}

func validateArgs(schema string, args map[string]any) error {
	argsBytes, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("marshal args: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(argsBytes)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid args: %v", msgs)
	}
	return nil
}
