// Package bundle locates the package source root: the agent and workflow
// definition files shipped with the CLI. By default they are compiled into
// the binary; a package directory on disk with the same layout
// (.claude/agents/, workflows/) can be used instead.
package bundle
