package installer

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/undeadlist/claude-code-agents/internal/bundle"
)

// testSource returns a package root with agents a.md and b.md and workflow w.md.
func testSource() fstest.MapFS {
	return fstest.MapFS{
		".claude/agents/a.md": {Data: []byte("# agent a\n")},
		".claude/agents/b.md": {Data: []byte("# agent b\n")},
		"workflows/w.md":      {Data: []byte("# workflow w\n")},
	}
}

func testManifest() []Entry {
	return []Entry{
		{Name: "a.md", Category: CategoryAgent},
		{Name: "b.md", Category: CategoryAgent},
		{Name: "w.md", Category: CategoryWorkflow},
	}
}

func TestInstallCopiesFiles(t *testing.T) {
	project := t.TempDir()
	src := testSource()

	report, err := Install(Options{Source: src, ProjectDir: project, Manifest: testManifest()})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	for name, want := range map[string]string{
		filepath.Join(".claude", "agents", "a.md"): "# agent a\n",
		filepath.Join(".claude", "agents", "b.md"): "# agent b\n",
		filepath.Join("workflows", "w.md"):         "# workflow w\n",
	} {
		got := readFile(t, filepath.Join(project, name))
		if got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}

	want := Report{
		Agents:    Tally{Installed: 2},
		Workflows: Tally{Installed: 1},
		Outcomes: []Outcome{
			{Entry: Entry{Name: "a.md", Category: CategoryAgent}, Action: ActionDone},
			{Entry: Entry{Name: "b.md", Category: CategoryAgent}, Action: ActionDone},
			{Entry: Entry{Name: "w.md", Category: CategoryWorkflow}, Action: ActionDone},
		},
		IgnoreCreated: true,
	}
	if diff := cmp.Diff(want, *report); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestInstallSkipsExistingDestination(t *testing.T) {
	project := t.TempDir()
	agents := filepath.Join(project, ".claude", "agents")
	if err := os.MkdirAll(agents, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(agents, "b.md"), []byte("local edits"), 0644); err != nil {
		t.Fatal(err)
	}

	src := fstest.MapFS{
		".claude/agents/a.md": {Data: []byte("alpha")},
		".claude/agents/b.md": {Data: []byte("bravo")},
	}
	manifest := []Entry{
		{Name: "a.md", Category: CategoryAgent},
		{Name: "b.md", Category: CategoryAgent},
	}

	var out bytes.Buffer
	report, err := Install(Options{Source: src, ProjectDir: project, Out: &out, Manifest: manifest})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	if diff := cmp.Diff(Tally{Installed: 1, Skipped: 1}, report.Agents); diff != "" {
		t.Errorf("agent tally mismatch (-want +got):\n%s", diff)
	}
	if got := readFile(t, filepath.Join(agents, "a.md")); got != "alpha" {
		t.Errorf("a.md = %q, want %q", got, "alpha")
	}
	if got := readFile(t, filepath.Join(agents, "b.md")); got != "local edits" {
		t.Errorf("b.md was modified: %q", got)
	}

	output := out.String()
	if !strings.Contains(output, "[done] a.md") {
		t.Errorf("expected [done] a.md in output:\n%s", output)
	}
	if !strings.Contains(output, "[skip] b.md (already exists)") {
		t.Errorf("expected already-exists skip in output:\n%s", output)
	}
}

func TestInstallSkipsFilesNotInPackage(t *testing.T) {
	project := t.TempDir()
	manifest := append(testManifest(), Entry{Name: "gone.md", Category: CategoryAgent})

	var out bytes.Buffer
	report, err := Install(Options{Source: testSource(), ProjectDir: project, Out: &out, Manifest: manifest})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	if report.Agents.Skipped != 1 {
		t.Errorf("agents skipped = %d, want 1", report.Agents.Skipped)
	}
	if !strings.Contains(out.String(), "[skip] gone.md (not found in package)") {
		t.Errorf("expected not-found skip in output:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(project, ".claude", "agents", "gone.md")); !os.IsNotExist(err) {
		t.Error("gone.md should not exist at destination")
	}
}

func TestInstallSecondRunIsNoop(t *testing.T) {
	project := t.TempDir()
	opts := Options{Source: bundle.Embedded(), ProjectDir: project}

	first, err := Install(opts)
	if err != nil {
		t.Fatalf("first Install: %v", err)
	}
	if first.Agents.Installed != len(AgentFiles) || first.Workflows.Installed != len(WorkflowFiles) {
		t.Fatalf("first run installed agents=%d workflows=%d, want %d and %d",
			first.Agents.Installed, first.Workflows.Installed, len(AgentFiles), len(WorkflowFiles))
	}

	second, err := Install(opts)
	if err != nil {
		t.Fatalf("second Install: %v", err)
	}
	want := Tally{Skipped: len(AgentFiles)}
	if diff := cmp.Diff(want, second.Agents); diff != "" {
		t.Errorf("second run agents (-want +got):\n%s", diff)
	}
	want = Tally{Skipped: len(WorkflowFiles)}
	if diff := cmp.Diff(want, second.Workflows); diff != "" {
		t.Errorf("second run workflows (-want +got):\n%s", diff)
	}
	for _, o := range second.Outcomes {
		if o.Action != ActionSkipExists {
			t.Errorf("%s: action = %s, want %s", o.Entry.Name, o.Action, ActionSkipExists)
		}
	}
}

func TestInstallMissingAgentSource(t *testing.T) {
	project := t.TempDir()
	src := fstest.MapFS{
		"workflows/w.md": {Data: []byte("w")},
	}

	var out bytes.Buffer
	report, err := Install(Options{Source: src, ProjectDir: project, Out: &out})
	if !errors.Is(err, ErrAgentSourceMissing) {
		t.Fatalf("err = %v, want ErrAgentSourceMissing", err)
	}
	if report != nil {
		t.Errorf("report = %+v, want nil", report)
	}

	entries, err := os.ReadDir(project)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("project should be untouched, found %d entries", len(entries))
	}
	if out.Len() != 0 {
		t.Errorf("expected no progress output, got:\n%s", out.String())
	}
}

func TestInstallMissingWorkflowSourceIsNotFatal(t *testing.T) {
	project := t.TempDir()
	src := fstest.MapFS{
		".claude/agents/a.md": {Data: []byte("a")},
	}
	manifest := []Entry{
		{Name: "a.md", Category: CategoryAgent},
		{Name: "w.md", Category: CategoryWorkflow},
	}

	report, err := Install(Options{Source: src, ProjectDir: project, Manifest: manifest})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if diff := cmp.Diff(Tally{Skipped: 1}, report.Workflows); diff != "" {
		t.Errorf("workflow tally (-want +got):\n%s", diff)
	}
	assertDirExists(t, filepath.Join(project, "workflows"))
}

func TestInstallCreatesAuditsAndIgnoreFile(t *testing.T) {
	project := t.TempDir()
	opts := Options{Source: testSource(), ProjectDir: project, Manifest: testManifest()}

	if _, err := Install(opts); err != nil {
		t.Fatalf("Install: %v", err)
	}

	assertDirExists(t, filepath.Join(project, ".claude", "audits"))
	ignorePath := filepath.Join(project, ".claude", ".gitignore")
	if got := readFile(t, ignorePath); got != "audits/\n" {
		t.Errorf(".gitignore = %q, want %q", got, "audits/\n")
	}

	report, err := Install(opts)
	if err != nil {
		t.Fatalf("second Install: %v", err)
	}
	if report.IgnoreCreated {
		t.Error("second run should not recreate .gitignore")
	}
	if got := readFile(t, ignorePath); got != "audits/\n" {
		t.Errorf(".gitignore changed to %q", got)
	}
}

func TestInstallUsageHintsOnlyWhenInstalled(t *testing.T) {
	project := t.TempDir()
	opts := Options{Source: testSource(), ProjectDir: project, Manifest: testManifest()}

	var first bytes.Buffer
	opts.Out = &first
	if _, err := Install(opts); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if !strings.Contains(first.String(), "Usage:") || !strings.Contains(first.String(), "Docs: https://github.com/undeadlist/claude-code-agents") {
		t.Errorf("expected usage hints after install:\n%s", first.String())
	}

	var second bytes.Buffer
	opts.Out = &second
	if _, err := Install(opts); err != nil {
		t.Fatalf("second Install: %v", err)
	}
	if strings.Contains(second.String(), "Usage:") {
		t.Errorf("usage hints should be omitted when nothing was installed:\n%s", second.String())
	}
	if !strings.Contains(second.String(), "Installed: 0  Skipped: 2") {
		t.Errorf("expected agent skip summary:\n%s", second.String())
	}
}

func TestInstallDestinationNotADirectory(t *testing.T) {
	project := t.TempDir()
	workflows := filepath.Join(project, "workflows")
	if err := os.WriteFile(workflows, []byte("a file"), 0644); err != nil {
		t.Fatal(err)
	}

	report, err := Install(Options{Source: testSource(), ProjectDir: project, Manifest: testManifest()})
	if err == nil {
		t.Fatal("expected an error when workflows/ is a file")
	}
	if !strings.Contains(err.Error(), workflows) {
		t.Errorf("error %q does not name %s", err, workflows)
	}
	if report == nil {
		t.Fatal("expected the partial report")
	}
	if diff := cmp.Diff(Tally{Installed: 2}, report.Agents); diff != "" {
		t.Errorf("agent tally (-want +got):\n%s", diff)
	}
	if report.IgnoreCreated {
		t.Error("IgnoreCreated = true after a failure")
	}
	if _, err := os.Stat(filepath.Join(project, ".claude", ".gitignore")); !os.IsNotExist(err) {
		t.Error(".gitignore should not be written after a failure")
	}
	if got := readFile(t, workflows); got != "a file" {
		t.Errorf("workflows file changed to %q", got)
	}
}

func TestInstallRequiresSource(t *testing.T) {
	if _, err := Install(Options{ProjectDir: t.TempDir()}); err == nil {
		t.Error("expected error without a source")
	}
}

func TestManifestMatchesEmbeddedBundle(t *testing.T) {
	root := bundle.Embedded()
	for _, e := range Manifest() {
		name := e.Category.SourceDir() + "/" + e.Name
		if _, err := fs.Stat(root, name); err != nil {
			t.Errorf("embedded bundle missing %s: %v", name, err)
		}
	}
}

func TestManifestOrder(t *testing.T) {
	m := Manifest()
	if len(m) != len(AgentFiles)+len(WorkflowFiles) {
		t.Fatalf("manifest has %d entries", len(m))
	}
	if m[0].Name != "code-auditor.md" || m[0].Category != CategoryAgent {
		t.Errorf("first entry = %+v", m[0])
	}
	last := m[len(m)-1]
	if last.Category != CategoryWorkflow {
		t.Errorf("last entry = %+v, want a workflow", last)
	}
}

// Helpers

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("directory %s does not exist: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", path)
	}
}
