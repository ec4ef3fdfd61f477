package commands

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/lionspace/vertexflow/schema"
)

var schemaDebug bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the provider and model schemas as JSON",
	RunE:  runSchema,
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaDebug, "debug", false, "pretty-print Go values instead of JSON")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	payload := struct {
		Provider schema.ProviderSchema `json:"provider"`
		Models   []schema.ModelSchema  `json:"models"`
	}{
		Provider: schema.Provider(),
		Models:   schema.Models(),
	}

	if schemaDebug {
		printer := pp.New()
		printer.SetOutput(cmd.OutOrStdout())
		printer.Println(payload)
		return nil
	}

	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return nil
}
