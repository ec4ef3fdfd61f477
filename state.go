package vertexflow

import (
	"github.com/lionspace/vertexflow/api"
	"github.com/lionspace/vertexflow/messages"
	"github.com/lionspace/vertexflow/types"
)

// State is the shared record threaded through every step of one run. It is
// created per run and owned exclusively by that run; nothing is persisted.
// Messages is append-only: every step adds the raw model reply and never
// rewrites earlier turns.
type State struct {
	Messages       []messages.Message `json:"messages"`
	CurrentTask    string             `json:"current_task"`
	CompletedTasks []string           `json:"completed_tasks"`
	Context        types.ContextVars  `json:"context"`
	Next           api.Selector       `json:"next_agent"`
}

// NewState seeds the run state from the user's input. The input doubles as
// the initial task description until the planner replaces it.
func NewState(input string) State {
	return State{
		Messages:       []messages.Message{messages.User(input)},
		CurrentTask:    input,
		CompletedTasks: []string{},
		Context:        types.ContextVars{},
		Next:           api.SelectorPlanner,
	}
}
