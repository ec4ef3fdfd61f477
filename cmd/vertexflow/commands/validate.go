package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/lionspace/vertexflow/config"
	"github.com/lionspace/vertexflow/pkg/hebrew"
	"github.com/lionspace/vertexflow/provider/vertex"
	"github.com/lionspace/vertexflow/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration, model registry and integration schemas",
	Long: `Run the integration self-checks: environment configuration, model
registry consistency, schema well-formedness and Hebrew handling.

Exits 0 when every check passes, 1 otherwise.`,
	RunE: runValidate,
}

type check struct {
	name string
	fn   func() error
}

func runValidate(cmd *cobra.Command, _ []string) error {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	checks := []check{
		{"configuration", checkConfig},
		{"model registry", checkModelRegistry},
		{"provider schema", checkProviderSchema},
		{"model schemas", checkModelSchemas},
		{"hebrew handling", checkHebrew},
	}

	failed := 0
	for _, c := range checks {
		if err := c.fn(); err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s: %v\n", c.name, fail("FAIL"), err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", c.name, pass("PASS"))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "all checks passed")
	return nil
}

func checkConfig() error {
	return config.FromEnv().Validate()
}

func checkModelRegistry() error {
	configs := vertex.All()
	if len(configs) == 0 {
		return errors.New("no models registered")
	}
	for _, mc := range configs {
		if mc.ModelID == "" {
			return fmt.Errorf("model %s has no published model id", mc.Name)
		}
		p := mc.Params
		if p.Temperature.Default < p.Temperature.Min || p.Temperature.Default > p.Temperature.Max {
			return fmt.Errorf("model %s: temperature default outside bounds", mc.Name)
		}
		if p.MaxTokens.Default < p.MaxTokens.Min || p.MaxTokens.Default > p.MaxTokens.Max {
			return fmt.Errorf("model %s: max_tokens default outside bounds", mc.Name)
		}
	}
	return nil
}

func checkProviderSchema() error {
	p := schema.Provider()
	if p.Provider != schema.ProviderName {
		return fmt.Errorf("unexpected provider name %q", p.Provider)
	}
	var hasProject bool
	for _, field := range p.CredentialSchema.CredentialFormSchemas {
		if field.Variable == "project_id" && field.Required {
			hasProject = true
		}
		if field.Label.He == "" {
			return fmt.Errorf("credential field %s has no Hebrew label", field.Variable)
		}
	}
	if !hasProject {
		return errors.New("project_id credential field missing or optional")
	}
	_, err := p.JSON()
	return err
}

func checkModelSchemas() error {
	schemas := schema.Models()
	if len(schemas) != len(vertex.Names()) {
		return fmt.Errorf("schema count %d does not match registry size %d", len(schemas), len(vertex.Names()))
	}
	for _, s := range schemas {
		if len(s.ParameterRules) != 4 {
			return fmt.Errorf("model %s exposes %d parameter rules, want 4", s.Model, len(s.ParameterRules))
		}
		if _, err := json.Marshal(s); err != nil {
			return fmt.Errorf("model %s: %w", s.Model, err)
		}
	}
	return nil
}

func checkHebrew() error {
	if !hebrew.Contains("שלום עולם") {
		return errors.New("hebrew text not detected")
	}
	if hebrew.Contains("hello world") {
		return errors.New("latin text misdetected as hebrew")
	}
	if !strings.HasPrefix(hebrew.Enhance("מה השעה?"), hebrew.Instructions) {
		return errors.New("hebrew prompt not prefixed with instructions")
	}
	if !strings.HasSuffix(hebrew.Enhance("what time is it?"), hebrew.Instructions) {
		return errors.New("non-hebrew prompt not suffixed with instructions")
	}
	return nil
}
