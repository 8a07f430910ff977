package bundle

import (
	"embed"
	"io/fs"
	"os"
)

// Paths inside a package root. fs.FS paths are always slash-separated.
const (
	AgentsDir    = ".claude/agents"
	WorkflowsDir = "workflows"
)

// EmbeddedLabel names the compiled-in bundle in logs and listings.
const EmbeddedLabel = "embedded"

//go:embed all:assets
var assets embed.FS

// Embedded returns the package root compiled into the binary.
func Embedded() fs.FS {
	root, err := fs.Sub(assets, "assets")
	if err != nil {
		// "assets" is a valid constant path; fs.Sub cannot fail here.
		panic(err)
	}
	return root
}

// Open returns the package root to install from along with a label for it.
// An empty dir selects the embedded bundle.
func Open(dir string) (fs.FS, string) {
	if dir == "" {
		return Embedded(), EmbeddedLabel
	}
	return os.DirFS(dir), dir
}
