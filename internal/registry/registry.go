// Package registry provides a small generic registry for looking up named
// values (workflow agents, provider models).
package registry

import (
	"sort"

	"github.com/alphadose/haxmap"
)

type Registry[T any] struct {
	values *haxmap.Map[string, T]
}

func New[T any]() *Registry[T] {
	return &Registry[T]{values: haxmap.New[string, T]()}
}

func (r *Registry[T]) Get(name string) (T, bool) {
	return r.values.Get(name)
}

func (r *Registry[T]) Add(name string, value T) {
	r.values.Set(name, value)
}

func (r *Registry[T]) GetOrAdd(name string, valueFn func() T) (T, bool) {
	return r.values.GetOrCompute(name, valueFn)
}

func (r *Registry[T]) Len() int {
	return int(r.values.Len())
}

// Names returns the registered names in sorted order, so error messages and
// schema listings are deterministic.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, r.values.Len())
	r.values.ForEach(func(name string, _ T) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}
