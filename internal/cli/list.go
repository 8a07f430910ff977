package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/undeadlist/claude-code-agents/internal/bundle"
	"github.com/undeadlist/claude-code-agents/internal/config"
	"github.com/undeadlist/claude-code-agents/internal/installer"
)

var (
	listCategoryFilter string
	listJSON           bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bundled agents and workflows and whether they are installed",
	Long: `List every agent and workflow the package knows about with its state in the
project: installed, available (not yet installed) or missing (not shipped by
the package source).`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategoryFilter, "category", "", "Filter by category (agent, workflow)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if err := validateCategory(listCategoryFilter); err != nil {
		return err
	}

	src, label := bundle.Open(config.Source())

	statuses, err := installer.Status(installer.Options{
		Source:     src,
		SourceName: label,
		ProjectDir: config.ProjectDir(),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("reading install status: %w", err)
	}

	var entries []installer.EntryStatus
	for _, s := range statuses {
		if listCategoryFilter != "" && string(s.Category) != listCategoryFilter {
			continue
		}
		entries = append(entries, s)
	}

	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No entries matching --category=%s\n", listCategoryFilter)
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

// validateCategory accepts an empty filter or one of installer.Categories.
func validateCategory(name string) error {
	if name == "" {
		return nil
	}
	valid := make([]string, 0, len(installer.Categories))
	for _, c := range installer.Categories {
		if string(c) == name {
			return nil
		}
		valid = append(valid, string(c))
	}
	return fmt.Errorf("unknown category %q (valid: %s)", name, strings.Join(valid, ", "))
}

func printListTable(cmd *cobra.Command, entries []installer.EntryStatus) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tNAME\tSTATE\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Category, e.Name, e.State, e.Path)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []installer.EntryStatus) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
