package mapping

import (
	"attribute-mapper/internal/common"
	"attribute-mapper/model"
	"attribute-mapper/record"
)

// ComputeRegistry holds compute functions that schema files refer to by name.
type ComputeRegistry struct {
	funcs map[string]model.ComputeFunc
}

// NewComputeRegistry creates a new empty compute registry.
func NewComputeRegistry() *ComputeRegistry {
	return &ComputeRegistry{
		funcs: make(map[string]model.ComputeFunc),
	}
}

// Register adds fn under name, replacing an earlier registration.
// It returns the registry so registrations can be chained.
func (r *ComputeRegistry) Register(name string, fn model.ComputeFunc) *ComputeRegistry {
	r.funcs[name] = fn
	return r
}

// Get returns the function registered under name, or nil if not found.
func (r *ComputeRegistry) Get(name string) model.ComputeFunc {
	return r.funcs[name]
}

// Has returns true if a function with the given name exists.
func (r *ComputeRegistry) Has(name string) bool {
	_, exists := r.funcs[name]
	return exists
}

// Names returns all registered names, sorted.
func (r *ComputeRegistry) Names() []string {
	return common.SortedKeys(r.funcs)
}

// PathCompute returns a compute function that looks up path in the raw
// record. A missing path yields nil.
func PathCompute(path string) model.ComputeFunc {
	return func(r *record.Record) (any, error) {
		v, _ := r.Lookup(path)
		return v, nil
	}
}
