package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cover-letter-generator/internal/schemas"
	"github.com/spf13/cobra"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate configuration files against their JSON Schemas",
	Long:  "Validate-config checks profile, sections and overrides files against the embedded JSON Schemas and reports every violation with its field path.",
	RunE:  runValidateConfig,
}

var (
	validateProfilePath   string
	validateSectionsPath  string
	validateOverridesPath string
)

func init() {
	validateConfigCmd.Flags().StringVar(&validateProfilePath, "profile", "", "Profile file to validate")
	validateConfigCmd.Flags().StringVar(&validateSectionsPath, "sections", "", "Sections file to validate")
	validateConfigCmd.Flags().StringVar(&validateOverridesPath, "overrides", "", "Overrides file to validate")

	rootCmd.AddCommand(validateConfigCmd)
}

func runValidateConfig(cmd *cobra.Command, args []string) error {
	targets := []struct {
		schema string
		path   string
	}{
		{schemas.SchemaProfile, validateProfilePath},
		{schemas.SchemaSections, validateSectionsPath},
		{schemas.SchemaOverrides, validateOverridesPath},
	}

	checked := 0
	failed := false
	for _, target := range targets {
		if target.path == "" {
			continue
		}
		checked++
		if err := schemas.ValidateFile(target.schema, target.path); err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%s (%s schema):\n%v\n", target.path, target.schema, err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: valid %s\n", target.path, target.schema)
	}

	if checked == 0 {
		return fmt.Errorf("nothing to validate: provide --profile, --sections or --overrides")
	}
	if failed {
		return fmt.Errorf("one or more files failed validation")
	}
	return nil
}
