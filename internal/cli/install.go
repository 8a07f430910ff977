package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/undeadlist/claude-code-agents/internal/bundle"
	"github.com/undeadlist/claude-code-agents/internal/config"
	"github.com/undeadlist/claude-code-agents/internal/installer"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install bundled agents and workflows into the project",
	Long: `Copy each bundled agent to .claude/agents/ and each workflow to workflows/,
skipping files that already exist or that the package does not ship. Also
creates .claude/audits/ and, if missing, .claude/.gitignore.

This is what running the CLI without arguments does.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	src, label := bundle.Open(config.Source())

	report, err := installer.Install(installer.Options{
		Source:     src,
		SourceName: label,
		ProjectDir: config.ProjectDir(),
		Out:        cmd.OutOrStdout(),
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	logger.Debug("install finished",
		zap.Int("installed", report.Installed()),
		zap.Int("skipped", report.Skipped()),
		zap.Bool("ignore_created", report.IgnoreCreated))
	return nil
}
