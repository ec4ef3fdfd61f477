// Package types provides core type definitions shared across the vertexflow packages.
package types

import "github.com/goccy/go-json"

// ContextVars is the free-form key-value context bag accumulated across
// workflow steps. Each step may merge its parsed findings into the bag under
// its own key; the bag is owned by a single run and is not safe for
// concurrent modification.
type ContextVars map[string]any

// Clone returns a shallow copy of the context bag.
func (cv ContextVars) Clone() ContextVars {
	out := make(ContextVars, len(cv))
	for k, v := range cv {
		out[k] = v
	}
	return out
}

// String returns the JSON rendering of the bag, or the empty string if it
// cannot be marshaled.
func (cv ContextVars) String() string {
	data, err := json.Marshal(cv)
	if err != nil {
		return ""
	}
	return string(data)
}
