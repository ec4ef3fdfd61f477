// Package api defines the interfaces and routing vocabulary shared between
// the workflow engine and its agents.
package api

import (
	"github.com/lionspace/vertexflow/provider"
	"github.com/lionspace/vertexflow/types"
)

// Selector names the agent that should run next. The empty selector is the
// terminal sentinel: a run stops when its state carries it.
type Selector string

// End is the terminal selector.
const End Selector = ""

// The built-in routing table.
const (
	SelectorPlanner    Selector = "planner"
	SelectorResearcher Selector = "researcher"
	SelectorCoder      Selector = "coder"
	SelectorReviewer   Selector = "reviewer"
)

// IsEnd reports whether the selector signals termination.
func (s Selector) IsEnd() bool {
	return s == End
}

func (s Selector) String() string {
	return string(s)
}

// DecisionKind tags how a model reply was interpreted.
type DecisionKind string

const (
	// DecisionRoute means the reply named a successor.
	DecisionRoute DecisionKind = "route"
	// DecisionApproval means the reply carried an approval verdict, which
	// overrides any successor it also named.
	DecisionApproval DecisionKind = "approval"
	// DecisionUnparsed means the reply was not valid JSON; the agent's
	// fallback successor applies.
	DecisionUnparsed DecisionKind = "unparsed"
)

// Decision is the routing outcome parsed from one model reply.
type Decision struct {
	Kind     DecisionKind
	Next     Selector
	Approved bool
}

// Agent is one named stage in the routing table. An agent owns its
// instructions, the model binding it generates with, and the successor taken
// when its reply yields no usable routing decision.
type Agent interface {
	// Name returns the agent's registry name, which doubles as its selector.
	Name() string

	// Model returns the model binding this agent generates with.
	Model() Model

	// Instructions returns the agent's raw system prompt.
	Instructions() string

	// RenderInstructions renders the instructions with the run's context
	// variables. Instructions without template markers render as-is.
	RenderInstructions(types.ContextVars) (string, error)

	// Fallback names the successor taken when the model reply cannot be
	// parsed into a decision.
	Fallback() Selector
}

// Model binds a registry model name to the provider serving it.
type Model interface {
	Name() string
	Provider() provider.Provider
}
