package vertexflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/fogfish/opts"
	"github.com/google/uuid"
	"github.com/invopop/jsonschema"

	"github.com/lionspace/vertexflow/api"
	"github.com/lionspace/vertexflow/events"
	"github.com/lionspace/vertexflow/internal/registry"
	"github.com/lionspace/vertexflow/messages"
	"github.com/lionspace/vertexflow/pkg/uuidx"
	"github.com/lionspace/vertexflow/provider"
)

// DefaultMaxSteps bounds a run when no explicit limit is configured. The
// routing table has four agents, so a healthy run finishes well under it.
const DefaultMaxSteps = 20

// ErrMaxSteps is returned when a run exhausts its step budget without
// reaching the terminal selector, usually because the model keeps proposing
// non-terminal successors.
var ErrMaxSteps = errors.New("workflow exceeded maximum steps")

// Workflow routes a shared state object through a registry of agents until
// one of them selects termination. Runs are synchronous and single-threaded;
// a Workflow itself is immutable after New and safe to reuse across runs.
type Workflow struct {
	agents       []api.Agent
	table        *registry.Registry[api.Agent]
	entry        api.Selector
	maxSteps     int
	hook         events.Hook
	temperature  float64
	maxTokens    int
	enableHebrew bool
}

var (
	// WithAgents registers the routing table. Agent names double as selectors.
	WithAgents = opts.ForName[Workflow, []api.Agent]("agents")
	// WithEntry overrides the entry selector, planner by default.
	WithEntry = opts.ForName[Workflow, api.Selector]("entry")
	// WithMaxSteps bounds the number of steps per run.
	WithMaxSteps = opts.ForName[Workflow, int]("maxSteps")
	// WithHook installs a run observer.
	WithHook = opts.ForName[Workflow, events.Hook]("hook")
	// WithTemperature sets the sampling temperature for every model call.
	WithTemperature = opts.ForName[Workflow, float64]("temperature")
	// WithMaxTokens caps the reply length for every model call.
	WithMaxTokens = opts.ForName[Workflow, int]("maxTokens")
	// WithHebrew attaches the Hebrew instruction block to every prompt.
	WithHebrew = opts.ForName[Workflow, bool]("enableHebrew")
)

// New builds a workflow from the provided options. At least one agent is
// required and the entry selector must name one of them.
func New(options ...opts.Option[Workflow]) (*Workflow, error) {
	w := &Workflow{
		entry:       api.SelectorPlanner,
		maxSteps:    DefaultMaxSteps,
		hook:        events.Noop{},
		temperature: 0.7,
	}
	if err := opts.Apply(w, options); err != nil {
		return nil, err
	}
	if len(w.agents) == 0 {
		return nil, errors.New("workflow requires at least one agent")
	}
	w.table = registry.New[api.Agent]()
	for _, ag := range w.agents {
		w.table.Add(ag.Name(), ag)
	}
	if _, ok := w.table.Get(w.entry.String()); !ok {
		return nil, fmt.Errorf("entry selector %q names no registered agent", w.entry)
	}
	return w, nil
}

// routingReply documents the routing fields every agent reply may carry. The
// schema rides along on each completion so backends with structured output
// can pin the contract; agent-specific payload fields stay allowed.
type routingReply struct {
	NextAgent string `json:"next_agent,omitempty" jsonschema:"description=Registered agent to run next, or END"`
	Approved  bool   `json:"approved,omitempty" jsonschema:"description=Reviewer verdict; true terminates the run"`
}

var routingSchema = func() *provider.StructuredOutput {
	reflector := jsonschema.Reflector{DoNotReference: true, AllowAdditionalProperties: true}
	return &provider.StructuredOutput{
		Name:        "routing_reply",
		Description: "agent reply carrying the routing directive",
		Schema:      reflector.Reflect(routingReply{}),
	}
}()

// RunResult is the outcome of one workflow run. On failure Error carries the
// message and State holds everything accumulated up to the failing step.
type RunResult struct {
	RunID  uuid.UUID `json:"run_id"`
	Answer string    `json:"answer"`
	Steps  int       `json:"steps"`
	State  State     `json:"state"`
	Error  string    `json:"error,omitempty"`
}

// Run executes the workflow for one user input. It blocks until an agent
// selects termination, the step budget runs out, or a model call fails.
// History is append-only: the returned state carries the user input plus one
// assistant message per executed step.
func (w *Workflow) Run(ctx context.Context, input string) (RunResult, error) {
	runID := uuidx.New()
	state := NewState(input)
	result := RunResult{RunID: runID}

	current := w.entry
	for !current.IsEnd() {
		if err := ctx.Err(); err != nil {
			return w.fail(ctx, result, state, err)
		}
		if result.Steps >= w.maxSteps {
			return w.fail(ctx, result, state, fmt.Errorf("%w: %d", ErrMaxSteps, w.maxSteps))
		}
		ag, ok := w.table.Get(current.String())
		if !ok {
			return w.fail(ctx, result, state, fmt.Errorf("selector %q names no registered agent", current))
		}

		result.Steps++
		w.hook.OnStepStart(ctx, runID, ag.Name())

		instructions, err := ag.RenderInstructions(state.Context)
		if err != nil {
			return w.fail(ctx, result, state, fmt.Errorf("agent %s: render instructions: %w", ag.Name(), err))
		}

		completion := ag.Model().Provider().Complete(ctx, provider.CompletionParams{
			RunID:          runID,
			Instructions:   instructions,
			Prompt:         w.stepPrompt(ag, &state),
			Model:          ag.Model().Name(),
			Temperature:    w.temperature,
			MaxTokens:      w.maxTokens,
			EnableHebrew:   w.enableHebrew,
			ResponseSchema: routingSchema,
		})
		if !completion.Success {
			return w.fail(ctx, result, state, fmt.Errorf("agent %s: model call failed: %s", ag.Name(), completion.Err))
		}

		msg := messages.Assistant(ag.Name(), completion.Content)
		state.Messages = append(state.Messages, msg)
		w.hook.OnAssistantMessage(ctx, msg)

		decision := w.decide(ag, &state, completion.Content)
		w.hook.OnDecision(ctx, ag.Name(), decision)

		state.Next = decision.Next
		current = decision.Next
	}

	result.Answer = lastAssistant(state.Messages)
	result.State = state
	w.hook.OnResult(ctx, result.Answer)
	return result, nil
}

// stepPrompt builds the user-facing prompt for one step. The planner sees the
// flattened conversation; the other built-in agents get a focused one-liner
// over the current task or accumulated context.
func (w *Workflow) stepPrompt(ag api.Agent, state *State) string {
	switch api.Selector(ag.Name()) {
	case api.SelectorResearcher:
		return "חקור: " + state.CurrentTask
	case api.SelectorCoder:
		return "כתוב קוד עבור: " + state.CurrentTask
	case api.SelectorReviewer:
		return "בדוק: " + state.Context.String()
	default:
		return messages.Flatten(state.Messages)
	}
}

func (w *Workflow) fail(ctx context.Context, result RunResult, state State, err error) (RunResult, error) {
	w.hook.OnError(ctx, err)
	result.Error = err.Error()
	result.State = state
	return result, err
}

func lastAssistant(history []messages.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == messages.RoleAssistant {
			return history[i].Content
		}
	}
	return ""
}
