// Package agent provides the default workflow agent implementation and the
// four built-in agents of the planning workflow.
package agent

import (
	"strings"
	"text/template"

	"github.com/fogfish/opts"

	"github.com/lionspace/vertexflow/api"
	"github.com/lionspace/vertexflow/pkg/stdx"
	"github.com/lionspace/vertexflow/provider"
	"github.com/lionspace/vertexflow/types"
)

var _ api.Agent = (*defaultAgent)(nil)

type defaultAgent struct {
	name         string
	model        api.Model
	instructions string
	fallback     api.Selector
}

func (a *defaultAgent) Name() string {
	return a.name
}

func (a *defaultAgent) Model() api.Model {
	return a.model
}

func (a *defaultAgent) Instructions() string {
	return a.instructions
}

func (a *defaultAgent) Fallback() api.Selector {
	return a.fallback
}

// RenderInstructions renders the agent's instructions with the provided
// context variables. Instructions without template markers pass through.
func (a *defaultAgent) RenderInstructions(cv types.ContextVars) (string, error) {
	if !strings.Contains(a.instructions, "{{") {
		return a.instructions, nil
	}
	tmpl, err := template.New("instructions").Option("missingkey=error").Parse(a.instructions)
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, cv); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var (
	Name         = opts.ForName[defaultAgent, string]("name")
	Model        = opts.ForName[defaultAgent, api.Model]("model")
	Instructions = opts.ForName[defaultAgent, string]("instructions")
	Fallback     = opts.ForName[defaultAgent, api.Selector]("fallback")
)

// New creates an agent from the provided options. Option failures are
// programming mistakes, so they panic.
func New(options ...opts.Option[defaultAgent]) api.Agent {
	agent := &defaultAgent{}
	stdx.Must0(opts.Apply(agent, options))
	return agent
}

var _ api.Model = (*modelBinding)(nil)

type modelBinding struct {
	name string
	prov provider.Provider
}

func (m *modelBinding) Name() string {
	return m.name
}

func (m *modelBinding) Provider() provider.Provider {
	return m.prov
}

// Binding ties a registry model name to the provider serving it.
func Binding(name string, prov provider.Provider) api.Model {
	return &modelBinding{name: name, prov: prov}
}
