package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a résumé and print the ATS report",
	Long: `Reads a plain-text résumé, scores it against ATS conventions, lists strengths and
weaknesses with fixes, and ranks it against the role catalog. Flags override values from
the config file and RESUME_ATS_* environment variables.`,
	RunE: runAnalyze,
}

var (
	analyzeResume         string
	analyzeRole           string
	analyzeYear           int
	analyzeCatalog        string
	analyzeFormat         string
	analyzeOutput         string
	analyzeSuggestions    int
	analyzeSkipValidation bool
	analyzeInteractive    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to the plain-text résumé (required)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role key or name, e.g. \"data scientist\"")
	analyzeCmd.Flags().IntVar(&analyzeYear, "year", 0, "Reference year for \"present\" date ranges (default current year)")
	analyzeCmd.Flags().StringVar(&analyzeCatalog, "catalog", "", "Catalog override file (JSON or YAML)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", config.FormatText, "Output format: text or json")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Write the report to this file instead of stdout")
	analyzeCmd.Flags().IntVar(&analyzeSuggestions, "suggestions", 0, "Number of detailed role suggestions (default from catalog)")
	analyzeCmd.Flags().BoolVar(&analyzeSkipValidation, "skip-validation", false, "Analyze text even if it does not look like a résumé")
	analyzeCmd.Flags().BoolVarP(&analyzeInteractive, "interactive", "i", false, "Pick the target role from a menu")

	rootCmd.AddCommand(analyzeCmd)
}

// selectRole asks the user for a target role. It is a variable so tests can
// replace the terminal prompt.
var selectRole = func(cat *catalog.Catalog) (string, error) {
	roles := cat.Roles()
	items := make([]string, 0, len(roles)+1)
	for _, r := range roles {
		items = append(items, cat.DisplayName(r.Key))
	}
	items = append(items, noTargetRole)

	prompt := promptui.Select{
		Label: "Choose a target role and press ENTER",
		Items: items,
		Size:  len(items),
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("role selection aborted: %w", err)
	}
	if i >= len(roles) {
		return "", nil
	}
	return roles[i].Key, nil
}

const noTargetRole = "No target role"

func analyzeFlags() config.Config {
	return config.Config{
		Resume:         analyzeResume,
		Role:           analyzeRole,
		Year:           analyzeYear,
		Catalog:        analyzeCatalog,
		Format:         analyzeFormat,
		Out:            analyzeOutput,
		Suggestions:    analyzeSuggestions,
		SkipValidation: analyzeSkipValidation,
	}
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, analyzeFlags())
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("a résumé is required: pass --resume, set it in the config file or set RESUME_ATS_RESUME")
	}

	log := newLogger(cmd, cfg, analyzeInteractive)
	defer func() { _ = log.Sync() }()

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if analyzeInteractive {
		role, err := selectRole(cat)
		if err != nil {
			return err
		}
		cfg.Role = role
	}
	if cfg.Role != "" {
		if _, ok := cat.Role(cfg.Role); !ok {
			log.Warn("target role is not in the catalog; role bonuses and gaps are skipped", zap.String("role", cfg.Role))
		}
	}

	text, meta, err := ingestion.IngestFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to ingest résumé: %w", err)
	}
	log.Debug("ingested résumé",
		zap.String("source", meta.Source),
		zap.String("hash", meta.Hash),
		zap.Int("words", meta.WordCount))

	report, err := pipeline.Analyze(cmd.Context(), text, pipeline.Options{
		TargetRole:     cfg.Role,
		CurrentYear:    cfg.Year,
		Catalog:        cat,
		Suggestions:    cfg.Suggestions,
		SkipValidation: cfg.SkipValidation,
		OnProgress: func(e pipeline.ProgressEvent) {
			log.Debug(e.Message,
				zap.String("step", e.Step),
				zap.String("category", e.Category),
				zap.String("report_id", e.ReportID),
				zap.Strings("next", e.Available),
				zap.Strings("waiting", e.Blocked))
			if len(e.SkippedOptional) > 0 {
				log.Info("running without optional steps",
					zap.String("step", e.Step),
					zap.Strings("skipped", e.SkippedOptional))
			}
		},
	})
	if err != nil {
		if pipeline.IsContentError(err) {
			return fmt.Errorf("the file does not look like a résumé (use --skip-validation to analyze it anyway): %w", err)
		}
		return fmt.Errorf("analysis failed: %w", err)
	}

	log.Info("analysis complete",
		zap.String("report_id", report.ID),
		zap.Int("score", report.Score.Total),
		zap.Int("strengths", len(report.Strengths)),
		zap.Int("weaknesses", len(report.Weaknesses)))

	var out []byte
	switch cfg.Format {
	case config.FormatJSON:
		out, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		out = append(out, '\n')
	default:
		var buf bytes.Buffer
		observability.NewPrinter(&buf).PrintReport(report)
		out = buf.Bytes()
	}

	if err := writeOutput(cmd, cfg.Out, out); err != nil {
		return err
	}
	if cfg.Out != "" {
		log.Info("report written", zap.String("path", cfg.Out))
	}
	return nil
}
