package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/schemas"
)

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Validate a catalog override file",
	Long:  "Overlays a JSON or YAML catalog file on the embedded defaults and checks the result against the catalog JSON schema, the struct rules and the regex tables.",
	RunE:  runValidateCatalog,
}

var validateCatalogInput string

func init() {
	validateCatalogCmd.Flags().StringVarP(&validateCatalogInput, "in", "i", "", "Path to catalog file (required)")

	if err := validateCatalogCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCatalogCmd)
}

func runValidateCatalog(cmd *cobra.Command, _ []string) error {
	cat, err := catalog.LoadFile(validateCatalogInput)
	if err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			for _, fe := range schemaErr.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", fe.Field, fe.Message)
			}
		}
		return fmt.Errorf("catalog is invalid: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Catalog %s is valid (%d roles)\n", validateCatalogInput, len(cat.Roles()))
	return nil
}
