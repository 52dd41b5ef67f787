package weft

import (
	"fmt"

	"github.com/weftui/weft/internal/debug"
)

// Registry owns the instance arena. Each frame the application reconciles
// its view tree through it: paths seen this generation keep their
// instances, paths that disappeared are unmounted and disposed at the end
// of the generation.
type Registry struct {
	entries    map[string]*registryEntry
	generation uint64
}

type registryEntry struct {
	inst Instance
	gen  uint64 // generation the path was last resolved in
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
	}
}

// Generation returns the current reconcile generation.
func (r *Registry) Generation() uint64 {
	return r.generation
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Reconcile resolves the view tree into the instance tree for a new
// generation. Instances whose paths were not revisited are unmounted and,
// when they implement Disposable, disposed.
func (r *Registry) Reconcile(root View) (Instance, error) {
	if root == nil {
		return nil, fmt.Errorf("reconcile: nil root view")
	}
	r.generation++
	inst, err := r.resolve(root, rootPath(root))
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}
	r.sweep()
	return inst, nil
}

// GetOrCreate resolves the instance for a declaration at the given path.
// An existing instance of the same kind is updated with the declaration
// and revalidated for this generation; a kind mismatch is a
// ConfigurationError. A fresh path creates, initializes, and mounts a new
// instance.
func (r *Registry) GetOrCreate(v View, path string) (Instance, error) {
	if e, ok := r.entries[path]; ok {
		if e.inst.Kind() != v.Kind() {
			return nil, &ConfigurationError{
				Path: path,
				Want: e.inst.Kind(),
				Got:  v.Kind(),
			}
		}
		e.gen = r.generation
		e.inst.Update(v)
		return e.inst, nil
	}

	inst := v.CreateInstance()
	inst.Init(path)
	inst.Mount()
	r.entries[path] = &registryEntry{inst: inst, gen: r.generation}
	debug.Log("registry: created %s at %s (gen %d)", v.Kind(), path, r.generation)
	return inst, nil
}

// resolve recursively resolves a view and its children, wiring the child
// instances in declaration order.
func (r *Registry) resolve(v View, path string) (Instance, error) {
	inst, err := r.GetOrCreate(v, path)
	if err != nil {
		return nil, err
	}

	var children []Instance
	if p, ok := v.(Parent); ok {
		views := p.ChildViews()
		children = make([]Instance, 0, len(views))
		for i, cv := range views {
			if cv == nil {
				continue
			}
			ci, err := r.resolve(cv, childPath(path, cv, i))
			if err != nil {
				return nil, err
			}
			children = append(children, ci)
		}
	}
	inst.SetChildren(children)
	return inst, nil
}

// Clear unmounts and disposes every live instance. Used on shutdown.
func (r *Registry) Clear() {
	r.generation++
	r.sweep()
}

// sweep unmounts and disposes every instance not revisited this
// generation.
func (r *Registry) sweep() {
	for path, e := range r.entries {
		if e.gen == r.generation {
			continue
		}
		e.inst.Unmount()
		if d, ok := e.inst.(Disposable); ok {
			d.Dispose()
		}
		delete(r.entries, path)
		debug.Log("registry: disposed %s at %s (gen %d)", e.inst.Kind(), path, r.generation)
	}
}
