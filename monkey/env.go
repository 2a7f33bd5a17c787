package monkey

import (
	"maps"
	"slices"
)

// Env is a lexical scope. Closures hold a pointer to the Env they were created
// in, so a scope lives as long as any function that captured it.
type Env struct {
	outer  *Env
	values map[string]Value
}

// NewEnv creates a root scope for an interpreter session.
func NewEnv() *Env {
	return &Env{values: make(map[string]Value)}
}

// NewEnclosedEnv creates a child scope whose lookups fall back to outer.
func NewEnclosedEnv(outer *Env) *Env {
	return &Env{outer: outer, values: make(map[string]Value)}
}

// Get resolves name in this scope and then outward.
func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.values[name]; ok {
		return val, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return Value{}, false
}

// Set binds name in this scope only, shadowing any outer binding.
func (e *Env) Set(name string, val Value) Value {
	e.values[name] = val
	return val
}

// Names lists every visible binding without duplicates, innermost scope
// first and sorted within each scope.
func (e *Env) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for scope := e; scope != nil; scope = scope.outer {
		for _, name := range slices.Sorted(maps.Keys(scope.values)) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
