// Package registry holds the built-in launch descriptions compiled into the
// binary. Camera packages under cameras/ embed their .launch.hcl source and
// register it here under a short name, so `camlaunch chameleon` works without
// any file on disk.
package registry

import (
	"fmt"
	"sort"
)

// Module is the interface a built-in camera package implements to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry maps built-in description names to their HCL source.
type Registry struct {
	sources map[string]source
}

type source struct {
	filename string
	src      []byte
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{sources: make(map[string]source)}
}

// Register adds a named description. Registering the same name twice is a
// programmer error and panics at startup.
func (r *Registry) Register(name, filename string, src []byte) {
	if name == "" {
		panic("registry: description name must not be empty")
	}
	if _, exists := r.sources[name]; exists {
		panic(fmt.Sprintf("registry: description %q registered twice", name))
	}
	r.sources[name] = source{filename: filename, src: src}
}

// Source returns the HCL source and diagnostic filename for a registered
// name.
func (r *Registry) Source(name string) (filename string, src []byte, ok bool) {
	s, ok := r.sources[name]
	return s.filename, s.src, ok
}

// Names returns the registered description names, sorted for stable usage
// output.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
