package installer

import (
	"path/filepath"

	"github.com/undeadlist/claude-code-agents/internal/bundle"
)

// Category determines where an entry is read from and written to.
type Category string

const (
	CategoryAgent    Category = "agent"
	CategoryWorkflow Category = "workflow"
)

// Categories lists the categories in install order.
var Categories = []Category{CategoryAgent, CategoryWorkflow}

// SourceDir returns the slash-separated directory inside the package root.
func (c Category) SourceDir() string {
	if c == CategoryWorkflow {
		return bundle.WorkflowsDir
	}
	return bundle.AgentsDir
}

// DestDir returns the directory relative to the project root.
func (c Category) DestDir() string {
	if c == CategoryWorkflow {
		return WorkflowsDir
	}
	return filepath.Join(ClaudeDir, AgentsDir)
}

// Plural returns the display name used in progress headers ("agents").
func (c Category) Plural() string {
	return string(c) + "s"
}

// Entry is one file the installer knows about.
type Entry struct {
	Name     string
	Category Category
}

// Project layout produced by an install.
const (
	ClaudeDir    = ".claude"
	AgentsDir    = "agents"
	AuditsDir    = "audits"
	WorkflowsDir = "workflows"
	IgnoreFile   = ".gitignore"
)

// AgentFiles is the ordered list of agent definitions shipped with the package.
var AgentFiles = []string{
	"code-auditor.md",
	"bug-auditor.md",
	"security-auditor.md",
	"doc-auditor.md",
	"infra-auditor.md",
	"ui-auditor.md",
	"fix-planner.md",
	"code-fixer.md",
	"test-runner.md",
	"architect-reviewer.md",
	"browser-qa-agent.md",
	"fullstack-qa-orchestrator.md",
	"console-monitor.md",
	"visual-diff.md",
}

// WorkflowFiles is the ordered list of workflow definitions shipped with the package.
var WorkflowFiles = []string{
	"full-audit.md",
	"quick-fix.md",
	"pre-deploy.md",
	"browser-qa.md",
}

// Manifest returns every entry in install order: agents first, then workflows.
func Manifest() []Entry {
	entries := make([]Entry, 0, len(AgentFiles)+len(WorkflowFiles))
	for _, name := range AgentFiles {
		entries = append(entries, Entry{Name: name, Category: CategoryAgent})
	}
	for _, name := range WorkflowFiles {
		entries = append(entries, Entry{Name: name, Category: CategoryWorkflow})
	}
	return entries
}

// filterCategory returns the entries of one category, preserving order.
func filterCategory(entries []Entry, c Category) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}
