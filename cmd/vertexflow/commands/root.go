// Package commands implements the vertexflow CLI.
package commands

import (
	"log/slog"
	"os"
	"time"

	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vertexflow",
	Short: "Hebrew-first multi-agent workflows over Vertex AI, Anthropic and OpenAI",
	Long: `vertexflow routes a task through a team of LLM-backed agents
(planner, researcher, coder, reviewer) until the reviewer approves the work.

It also serves the provider and model schemas consumed by a host
conversational-AI framework, with English and Hebrew labels.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		configureLogging(verbose)
	},
}

func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}
	logger := zerolog.New(output).With().Timestamp().Logger()
	slog.SetDefault(slog.New(
		zeroslog.NewHandler(logger, &zeroslog.HandlerOptions{Level: level}),
	))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(validateCmd, schemaCmd, runCmd)
}

// Execute runs the CLI, returning the first command error.
func Execute() error {
	return rootCmd.Execute()
}
