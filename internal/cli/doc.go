// Package cli defines the Cobra command tree for the claude-code-agents CLI.
// Running the root command with no arguments installs the bundled agents and
// workflows into the current project. Commands delegate the work to
// internal packages and only handle flags and output formatting.
package cli
