// Package installer copies the bundled agent and workflow definitions into a
// project. Installation is idempotent by existence check: a file already
// present at its destination is skipped and never rewritten, and files the
// package does not ship are skipped too. The run prints one progress line per
// manifest entry followed by a summary.
package installer
