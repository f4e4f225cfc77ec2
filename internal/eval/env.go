package eval

import "sort"

// Env maps variable names to their last assigned value. One Env lives
// for a whole session; bindings are never removed.
type Env struct {
	vars map[string]Value
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Lookup returns the value bound to name.
func (e *Env) Lookup(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to v, replacing any previous binding.
func (e *Env) Set(name string, v Value) {
	e.vars[name] = v
}

// Len returns the number of bound names.
func (e *Env) Len() int {
	return len(e.vars)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
