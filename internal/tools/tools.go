// Package tools provides the registry of built-in tools available to
// the assistant.
package tools

import (
	"fmt"
	"sort"
	"sync"
)

// Tool is a named capability the assistant can invoke.
type Tool struct {
	Name        string
	Description string
	Run         RunFunc
}

// RunFunc executes a tool with raw string input and returns its output.
type RunFunc func(input string) (string, error)

// Registry holds the available tools by name.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Registering the same name twice is an error.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %q already registered", t.Name)
	}
	r.tools[t.Name] = t
	return nil
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the process-wide registry populated by Init.
var Default = NewRegistry()

// Init registers the built-in tools on the default registry. It is
// invoked unconditionally by the bootstrap sequence; repeated calls are
// harmless no-ops.
func Init() error {
	if _, ok := Default.Get("shell"); ok {
		return nil
	}
	return Default.Register(shellTool())
}
