// Package config manages user-level settings stored at
// ~/.claude-code-agents/config.yaml. Settings can be overridden with CCA_*
// environment variables and command-line flags; the settings file is checked
// against an embedded JSON schema when loaded and before it is written.
package config
