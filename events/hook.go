// Package events defines the observation hooks a workflow run reports to.
// Hooks make otherwise-silent outcomes, notably unparseable model replies,
// visible to the operator.
package events

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lionspace/vertexflow/api"
	"github.com/lionspace/vertexflow/messages"
	"github.com/lionspace/vertexflow/pkg/slogx"
)

// Hook receives run lifecycle notifications. Implementations must tolerate
// being called from a single goroutine in step order.
type Hook interface {
	OnStepStart(ctx context.Context, runID uuid.UUID, step string)
	OnAssistantMessage(ctx context.Context, msg messages.Message)
	OnDecision(ctx context.Context, step string, decision api.Decision)
	OnError(ctx context.Context, err error)
	OnResult(ctx context.Context, content string)
}

// Noop is the default hook; embed it to implement only part of Hook.
type Noop struct{}

var _ Hook = Noop{}

func (Noop) OnStepStart(context.Context, uuid.UUID, string)       {}
func (Noop) OnAssistantMessage(context.Context, messages.Message) {}
func (Noop) OnDecision(context.Context, string, api.Decision)     {}
func (Noop) OnError(context.Context, error)                       {}
func (Noop) OnResult(context.Context, string)                     {}

// Slog logs every notification through log/slog. Unparsed decisions log at
// warn level so malformed model output is never silently swallowed.
type Slog struct {
	Log *slog.Logger
}

var _ Hook = Slog{}

func (s Slog) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

func (s Slog) OnStepStart(_ context.Context, runID uuid.UUID, step string) {
	s.logger().Info("step start", slogx.Step(step), slogx.Stringer("run_id", runID))
}

func (s Slog) OnAssistantMessage(_ context.Context, msg messages.Message) {
	s.logger().Debug("assistant message", slog.String("sender", msg.Sender), slog.Int("length", len(msg.Content)))
}

func (s Slog) OnDecision(_ context.Context, step string, decision api.Decision) {
	log := s.logger()
	attrs := []any{slogx.Step(step), slog.String("kind", string(decision.Kind)), slog.String("next", decision.Next.String())}
	if decision.Kind == api.DecisionUnparsed {
		log.Warn("model reply was not valid JSON, using fallback successor", attrs...)
		return
	}
	log.Info("routing decision", attrs...)
}

func (s Slog) OnError(_ context.Context, err error) {
	s.logger().Error("workflow error", slogx.Error(err))
}

func (s Slog) OnResult(_ context.Context, content string) {
	s.logger().Info("workflow result", slog.Int("length", len(content)))
}
