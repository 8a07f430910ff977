package installer

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/undeadlist/claude-code-agents/internal/branding"
)

var printer = message.NewPrinter(language.English)

const rule = "  ----------------------------------------"

// usageExamples are printed after an install that added at least one file.
var usageExamples = []string{
	`claude "Run parallel audit on src/"`,
	`claude "Use architect-reviewer to coordinate full QA"`,
	`claude "Follow workflows/full-audit.md on src/"`,
}

// PrintSummary writes per-category counts and, when anything was installed,
// usage hints with the documentation link.
func PrintSummary(w io.Writer, r *Report) {
	printer.Fprintln(w, rule)
	printer.Fprintf(w, "  %-10s Installed: %d  Skipped: %d\n", "Agents", r.Agents.Installed, r.Agents.Skipped)
	printer.Fprintf(w, "  %-10s Installed: %d  Skipped: %d\n", "Workflows", r.Workflows.Installed, r.Workflows.Skipped)
	printer.Fprintln(w, rule)
	printer.Fprintln(w)

	if r.Installed() == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("  Usage:\n")
	for _, ex := range usageExamples {
		b.WriteString("    " + ex + "\n")
	}
	b.WriteString("\n  Docs: " + branding.DocsURL() + "\n\n")
	io.WriteString(w, b.String())
}
