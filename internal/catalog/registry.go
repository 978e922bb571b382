package catalog

import "fmt"

// Registry is the immutable, order-preserving table of tool definitions.
// It is built once at startup and read-only afterwards, so concurrent
// lookups need no locking.
type Registry struct {
	defs  []ToolDefinition
	index map[string]int
}

// NewRegistry builds a registry from the given definitions. Duplicate tool
// names and definitions without a target operation are construction errors.
func NewRegistry(defs []ToolDefinition) (*Registry, error) {
	r := &Registry{
		defs:  make([]ToolDefinition, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	copy(r.defs, defs)
	for i, def := range r.defs {
		if def.Name == "" {
			return nil, fmt.Errorf("tool at position %d has no name", i)
		}
		if def.Operation == "" {
			return nil, fmt.Errorf("tool %q has no target operation", def.Name)
		}
		if _, dup := r.index[def.Name]; dup {
			return nil, fmt.Errorf("duplicate tool name %q", def.Name)
		}
		r.index[def.Name] = i
	}
	return r, nil
}

// Default builds the registry over the built-in Slack tool catalog.
func Default() (*Registry, error) {
	return NewRegistry(Definitions())
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (ToolDefinition, bool) {
	i, ok := r.index[name]
	if !ok {
		return ToolDefinition{}, false
	}
	return r.defs[i], true
}

// List returns all definitions in registration order. The order is fixed at
// construction time and identical across calls. Callers receive a copy and
// cannot mutate the registry through it.
func (r *Registry) List() []ToolDefinition {
	out := make([]ToolDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.defs) }
