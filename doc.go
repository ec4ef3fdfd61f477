// Package vertexflow orchestrates a small team of LLM-backed agents over
// Google Vertex AI, Anthropic and OpenAI backends.
//
// A Workflow routes one shared state object through a registry of named
// agents. Each step renders the agent's instructions, calls its model
// binding, appends the raw reply to the run history and parses the reply's
// next_agent field to pick the following step. The reviewer agent may instead
// approve the accumulated work, which terminates the run regardless of any
// successor it named. Replies that are not valid JSON route to the agent's
// fixed fallback successor and surface through the events.Hook as unparsed
// decisions.
//
// The package is Hebrew-first: the built-in agents carry Hebrew instructions,
// and prompts can be enhanced with a Hebrew response directive whenever the
// input contains Hebrew code points.
package vertexflow
