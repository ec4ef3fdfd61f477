package vertexflow

import (
	"github.com/tidwall/gjson"

	"github.com/lionspace/vertexflow/api"
)

// parsePayload validates a model reply as a JSON object. Anything else, bare
// scalars and arrays included, counts as unparseable.
func parsePayload(reply string) (gjson.Result, bool) {
	if !gjson.Valid(reply) {
		return gjson.Result{}, false
	}
	payload := gjson.Parse(reply)
	if !payload.IsObject() {
		return gjson.Result{}, false
	}
	return payload, true
}

// resolveNext reads the next_agent field out of a parsed reply. A missing
// field resolves to the agent's own default successor; a field naming an
// unregistered agent, "END" included, resolves to termination.
func (w *Workflow) resolveNext(payload gjson.Result, missing api.Selector) api.Selector {
	field := payload.Get("next_agent")
	if !field.Exists() {
		return missing
	}
	sel := api.Selector(field.String())
	if _, ok := w.table.Get(sel.String()); ok {
		return sel
	}
	return api.End
}

// decide interprets one model reply, merges its payload into the run state
// and returns the routing decision. A reply that is not a JSON object yields
// a DecisionUnparsed routed at the agent's fallback successor, with no state
// update beyond the already-appended message.
func (w *Workflow) decide(ag api.Agent, state *State, reply string) api.Decision {
	payload, ok := parsePayload(reply)
	if !ok {
		return api.Decision{Kind: api.DecisionUnparsed, Next: ag.Fallback()}
	}

	switch api.Selector(ag.Name()) {
	case api.SelectorPlanner:
		if instructions := payload.Get("instructions"); instructions.Exists() {
			state.CurrentTask = instructions.String()
		}
		if plan := payload.Get("plan"); plan.Exists() {
			state.Context["plan"] = plan.Value()
		}
		return api.Decision{Kind: api.DecisionRoute, Next: w.resolveNext(payload, ag.Fallback())}

	case api.SelectorResearcher:
		state.CompletedTasks = append(state.CompletedTasks, state.CurrentTask)
		state.Context["research"] = payload.Value()
		return api.Decision{Kind: api.DecisionRoute, Next: w.resolveNext(payload, ag.Fallback())}

	case api.SelectorCoder:
		state.CompletedTasks = append(state.CompletedTasks, state.CurrentTask)
		state.Context["code"] = payload.Value()
		return api.Decision{Kind: api.DecisionRoute, Next: w.resolveNext(payload, ag.Fallback())}

	case api.SelectorReviewer:
		state.CompletedTasks = append(state.CompletedTasks, "review")
		state.Context["review"] = payload.Value()
		if approved := payload.Get("approved"); approved.Exists() {
			next := w.resolveNext(payload, api.SelectorPlanner)
			if approved.Bool() {
				// Approval overrides whatever successor the reply named.
				next = api.End
			}
			return api.Decision{Kind: api.DecisionApproval, Approved: approved.Bool(), Next: next}
		}
		return api.Decision{Kind: api.DecisionRoute, Next: w.resolveNext(payload, api.SelectorPlanner)}

	default:
		// Custom agents get plain routing with no state merge.
		return api.Decision{Kind: api.DecisionRoute, Next: w.resolveNext(payload, ag.Fallback())}
	}
}
