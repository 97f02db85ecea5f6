package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"
)

// newSchemaCmd returns the subcommand that prints the JSON Schema for the
// YAML configuration file accepted via --config.
func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(configSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)

			return nil
		},
	}
}

func configSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       "insertdox configuration",
		Description: "Settings applied before explicit CLI flags.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"prototypes": {
				Type:        "boolean",
				Description: "Only emit function comments and prototypes.",
			},
			"boilerplate": {
				Type:        "string",
				Description: "Path of a text file injected into every file-header comment.",
			},
		},
		// Reject unknown keys so typos fail validation.
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}
