package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/config"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles in the catalog",
	RunE:  runRoles,
}

var (
	rolesCatalog string
	rolesFormat  string
)

type roleSummary struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	CoreSkills  []string `json:"core_skills"`
	TechStack   string   `json:"tech_stack"`
}

func init() {
	rolesCmd.Flags().StringVar(&rolesCatalog, "catalog", "", "Catalog override file (JSON or YAML)")
	rolesCmd.Flags().StringVarP(&rolesFormat, "format", "f", config.FormatText, "Output format: text or json")

	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(rolesCatalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	roles := cat.Roles()
	summaries := make([]roleSummary, 0, len(roles))
	for _, r := range roles {
		summaries = append(summaries, roleSummary{
			Key:         r.Key,
			DisplayName: cat.DisplayName(r.Key),
			CoreSkills:  r.CoreSkills,
			TechStack:   cat.TechStack(r.Key),
		})
	}

	switch rolesFormat {
	case config.FormatJSON:
		out, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal roles: %w", err)
		}
		return writeOutput(cmd, "", append(out, '\n'))
	case config.FormatText:
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tROLE\tCORE SKILLS")
		for _, s := range summaries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Key, s.DisplayName, strings.Join(s.CoreSkills, ", "))
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format %q: use text or json", rolesFormat)
	}
}
