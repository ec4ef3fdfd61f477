package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/lionspace/vertexflow"
	"github.com/lionspace/vertexflow/agent"
	"github.com/lionspace/vertexflow/config"
	"github.com/lionspace/vertexflow/events"
	"github.com/lionspace/vertexflow/provider"
	"github.com/lionspace/vertexflow/provider/anthropic"
	"github.com/lionspace/vertexflow/provider/openai"
	"github.com/lionspace/vertexflow/provider/vertex"
)

var (
	runBackend  string
	runModel    string
	runMaxSteps int
	runHebrew   bool
	runReport   string
)

var runCmd = &cobra.Command{
	Use:   "run <task>",
	Short: "Run a task through the multi-agent workflow",
	Example: `  # Plan, code and review a task on Vertex AI
  vertexflow run "כתוב פונקציה לחישוב פיבונאצ'י"

  # Use Anthropic instead, write a machine-readable run report
  vertexflow run --backend anthropic --report run.json "write a fibonacci function"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWorkflow,
}

func init() {
	runCmd.Flags().StringVar(&runBackend, "backend", "anthropic", "model backend: anthropic, vertex or openai")
	runCmd.Flags().StringVar(&runModel, "model", "", "model name within the backend's registry")
	runCmd.Flags().IntVar(&runMaxSteps, "max-steps", vertexflow.DefaultMaxSteps, "abort the run after this many steps")
	runCmd.Flags().BoolVar(&runHebrew, "hebrew", true, "attach the Hebrew response directive to every prompt")
	runCmd.Flags().StringVar(&runReport, "report", "", "write a JSON run report to this file")
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	prov, model, err := buildProvider()
	if err != nil {
		return err
	}
	if runModel != "" {
		model = runModel
	}

	w, err := vertexflow.New(
		vertexflow.WithAgents(agent.All(agent.Binding(model, prov))),
		vertexflow.WithMaxSteps(runMaxSteps),
		vertexflow.WithHebrew(runHebrew),
		vertexflow.WithHook(events.Slog{}),
	)
	if err != nil {
		return err
	}

	result, runErr := w.Run(cmd.Context(), strings.Join(args, " "))

	if runReport != "" {
		if err := writeReport(runReport, result); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	rendered, err := glamour.Render(result.Answer, "dark")
	if err != nil {
		// Fall back to the raw reply when the terminal renderer chokes.
		fmt.Fprintln(cmd.OutOrStdout(), result.Answer)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func buildProvider() (provider.Provider, string, error) {
	switch runBackend {
	case "vertex":
		cfg := config.FromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, "", err
		}
		if err := cfg.Apply(); err != nil {
			return nil, "", err
		}
		return vertex.New(cfg), "gemini-pro", nil
	case "anthropic":
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, "", fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
		return anthropic.New(key), "claude-sonnet", nil
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			return nil, "", fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return openai.New(), "gpt-4o-mini", nil
	default:
		return nil, "", fmt.Errorf("unknown backend %q, choose from: vertex, anthropic, openai", runBackend)
	}
}

// writeReport annotates the marshaled run result with report metadata and
// writes it to path.
func writeReport(path string, result vertexflow.RunResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	report, err := sjson.SetBytes(raw, "generated_at", time.Now().Format(time.RFC3339))
	if err != nil {
		return err
	}
	report, err = sjson.SetBytes(report, "backend", runBackend)
	if err != nil {
		return err
	}
	return os.WriteFile(path, report, 0o644)
}
