package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/undeadlist/claude-code-agents/internal/branding"
	"github.com/undeadlist/claude-code-agents/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagSource  string
	flagDir     string
	flagVerbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies the bundled agent and workflow definitions into the
current project: agents to .claude/agents/, workflows to workflows/. Files that
already exist are never overwritten, so it is safe to run again after an upgrade.

Run without arguments to install.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// version works even with a broken settings file.
		if cmd.Name() == "version" {
			return nil
		}

		if err := config.Load(cmd.Flags()); err != nil {
			return err
		}

		logger = newLogger(config.Verbose(), cmd.ErrOrStderr())
		logger.Debug("settings loaded",
			zap.String("file", config.FilePath()),
			zap.String("source", config.Source()),
			zap.String("project_dir", config.ProjectDir()))
		return nil
	},
	RunE: runInstall,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "Package directory to install from (default: bundled files)")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Project directory to install into (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
// A failing command is reported once on stderr. The logger is flushed on
// every path, including failures.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
