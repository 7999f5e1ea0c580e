package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/extraction"
	"github.com/jonathan/resume-ats/internal/ingestion"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the fact model from a résumé",
	Long:  "Cleans a plain-text résumé and prints the extracted fact model as JSON. With --out-dir the cleaned text, its metadata and the facts are written to that directory.",
	RunE:  runExtract,
}

var (
	extractResume  string
	extractYear    int
	extractCatalog string
	extractOutDir  string
)

func init() {
	extractCmd.Flags().StringVarP(&extractResume, "resume", "r", "", "Path to the plain-text résumé (required)")
	extractCmd.Flags().IntVar(&extractYear, "year", 0, "Reference year for \"present\" date ranges (default current year)")
	extractCmd.Flags().StringVar(&extractCatalog, "catalog", "", "Catalog override file (JSON or YAML)")
	extractCmd.Flags().StringVar(&extractOutDir, "out-dir", "", "Directory for resume.cleaned.txt, resume.meta.json and resume.facts.json")

	if err := extractCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(extractCatalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	text, meta, err := ingestion.IngestFromFile(extractResume)
	if err != nil {
		return fmt.Errorf("failed to ingest résumé: %w", err)
	}

	var opts []extraction.Option
	if extractYear != 0 {
		opts = append(opts, extraction.WithCurrentYear(extractYear))
	}
	facts, err := extraction.New(cat, opts...).Extract(text)
	if err != nil && !errors.Is(err, extraction.ErrEmptyInput) {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	factsJSON, err := json.MarshalIndent(facts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal facts: %w", err)
	}
	factsJSON = append(factsJSON, '\n')

	if extractOutDir == "" {
		return writeOutput(cmd, "", factsJSON)
	}

	if err := ingestion.WriteOutput(extractOutDir, text, meta); err != nil {
		return err
	}
	if err := writeOutput(cmd, filepath.Join(extractOutDir, "resume.facts.json"), factsJSON); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote cleaned text, metadata and facts to %s\n", extractOutDir)
	return nil
}
