// Package main provides the resume_ats command line tool for ATS résumé analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume_ats",
	Short:         "ATS résumé analyzer",
	Long:          "resume_ats scores a plain-text résumé against ATS conventions, explains its strengths and weaknesses, and matches it against a catalog of job roles.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	debugLogs  bool
	jsonLogs   bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&debugLogs, "debug", "d", false, "Verbose/debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "JSON format for logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
