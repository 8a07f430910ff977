package installer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/undeadlist/claude-code-agents/internal/branding"
	"github.com/undeadlist/claude-code-agents/internal/bundle"
)

// ErrAgentSourceMissing is returned when the package root has no agent
// directory. Nothing is written to the project in that case.
var ErrAgentSourceMissing = errors.New("could not find agent files in package")

// Options configures an install or status query.
type Options struct {
	// Source is the package root. Required.
	Source fs.FS
	// SourceName labels Source in debug logs.
	SourceName string
	// ProjectDir is the destination root. Defaults to the working directory.
	ProjectDir string
	// Out receives progress and summary lines. Defaults to io.Discard.
	Out io.Writer
	// Logger receives debug tracing. Defaults to a no-op logger.
	Logger *zap.Logger
	// Manifest overrides the built-in entries.
	Manifest []Entry
}

func (o Options) withDefaults() (Options, error) {
	if o.Source == nil {
		return o, errors.New("no package source configured")
	}
	if o.ProjectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return o, fmt.Errorf("getting current directory: %w", err)
		}
		o.ProjectDir = cwd
	}
	if o.Out == nil {
		o.Out = io.Discard
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Manifest == nil {
		o.Manifest = Manifest()
	}
	return o, nil
}

// Action is what happened to a single manifest entry.
type Action string

const (
	ActionDone        Action = "done"
	ActionSkipMissing Action = "skip-missing"
	ActionSkipExists  Action = "skip-exists"
)

// Outcome records the action taken for one entry.
type Outcome struct {
	Entry  Entry
	Action Action
}

// Tally counts installed and skipped files for one category.
type Tally struct {
	Installed int
	Skipped   int
}

// Report summarizes an install run.
type Report struct {
	Agents    Tally
	Workflows Tally
	Outcomes  []Outcome
	// IgnoreCreated is true when this run wrote .claude/.gitignore.
	IgnoreCreated bool
}

// Installed returns the number of files installed across all categories.
func (r *Report) Installed() int {
	return r.Agents.Installed + r.Workflows.Installed
}

// Skipped returns the number of files skipped across all categories.
func (r *Report) Skipped() int {
	return r.Agents.Skipped + r.Workflows.Skipped
}

func (r *Report) tally(c Category) *Tally {
	if c == CategoryWorkflow {
		return &r.Workflows
	}
	return &r.Agents
}

func (r *Report) record(e Entry, a Action) {
	t := r.tally(e.Category)
	if a == ActionDone {
		t.Installed++
	} else {
		t.Skipped++
	}
	r.Outcomes = append(r.Outcomes, Outcome{Entry: e, Action: a})
}

// Install copies every manifest entry from the package root into the
// project, then creates .claude/audits/ and .claude/.gitignore. It returns
// ErrAgentSourceMissing, before touching the project, when the package has
// no agent directory. Any other filesystem failure aborts the run and is
// returned along with the partial report.
func Install(opts Options) (*Report, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	w := opts.Out

	if info, err := fs.Stat(opts.Source, bundle.AgentsDir); err != nil || !info.IsDir() {
		log.Debug("agent source directory not found",
			zap.String("source", opts.SourceName),
			zap.String("dir", bundle.AgentsDir))
		return nil, ErrAgentSourceMissing
	}

	log.Debug("installing",
		zap.String("source", opts.SourceName),
		zap.String("project", opts.ProjectDir),
		zap.Int("entries", len(opts.Manifest)))

	fmt.Fprintf(w, "\n  %s\n\n", branding.DisplayName())

	report := &Report{}
	for _, c := range Categories {
		if err := installCategory(opts, c, report); err != nil {
			return report, err
		}
	}

	claudeDir := filepath.Join(opts.ProjectDir, ClaudeDir)
	auditsDir := filepath.Join(claudeDir, AuditsDir)
	if err := os.MkdirAll(auditsDir, dirPerm); err != nil {
		return report, fmt.Errorf("creating %s: %w", auditsDir, err)
	}

	created, err := EnsureIgnoreFile(claudeDir)
	if err != nil {
		return report, err
	}
	report.IgnoreCreated = created
	log.Debug("ignore file", zap.Bool("created", created))

	PrintSummary(w, report)
	return report, nil
}

func installCategory(opts Options, c Category, report *Report) error {
	w := opts.Out
	log := opts.Logger.With(zap.String("category", string(c)))

	destDir := filepath.Join(opts.ProjectDir, c.DestDir())
	if err := os.MkdirAll(destDir, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", destDir, err)
	}

	entries := filterCategory(opts.Manifest, c)
	if len(entries) == 0 {
		return nil
	}

	fmt.Fprintf(w, "  Installing %d %s to %s/\n\n", len(entries), c.Plural(), filepath.ToSlash(c.DestDir()))

	for _, e := range entries {
		srcPath := path.Join(c.SourceDir(), e.Name)
		dst := filepath.Join(destDir, e.Name)

		ok, err := sourceExists(opts.Source, srcPath)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(w, "  [skip] %s (not found in package)\n", e.Name)
			report.record(e, ActionSkipMissing)
			continue
		}

		exists, err := destExists(dst)
		if err != nil {
			return err
		}
		if exists {
			fmt.Fprintf(w, "  [skip] %s (already exists)\n", e.Name)
			report.record(e, ActionSkipExists)
			continue
		}

		if err := copyFile(opts.Source, srcPath, dst); err != nil {
			if errors.Is(err, errDestExists) {
				fmt.Fprintf(w, "  [skip] %s (already exists)\n", e.Name)
				report.record(e, ActionSkipExists)
				continue
			}
			return err
		}

		log.Debug("copied", zap.String("src", srcPath), zap.String("dst", dst))
		fmt.Fprintf(w, "  [done] %s\n", e.Name)
		report.record(e, ActionDone)
	}

	fmt.Fprintln(w)
	return nil
}
