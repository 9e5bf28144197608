package buildinfo

import (
	"strings"

	"github.com/cinemahdplus/cinemahdplus/cli"
)

// Package buildinfo exposes version metadata for the CLI. Values can be
// overridden at build time via -ldflags. The cli package variables are honored
// as a fallback for release scripts that target them.

// DefaultVersion is the project version shipped with the site metadata.
const DefaultVersion = "1.0.0"

var (
	// Version is the semantic version. Empty means cli.Version, then DefaultVersion.
	Version = ""
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build date (optional). Falls back to cli.Date.
	Date = ""
	// BuiltBy is an optional builder identifier.
	BuiltBy = ""
)

// ResolvedVersion returns the bare version string printed by --version.
func ResolvedVersion() string {
	if v := strings.TrimSpace(Version); v != "" {
		return v
	}
	if v := strings.TrimSpace(cli.Version); v != "" {
		return v
	}
	return DefaultVersion
}

// Summary returns a concise single-line version string with optional build
// details, e.g. "1.0.0 (commit=abc1234, date=2025-06-01)".
func Summary() string {
	v := ResolvedVersion()

	d := Date
	if d == "" {
		d = cli.Date
	}

	parts := make([]string, 0, 3)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d != "" {
		parts = append(parts, "date="+d)
	}
	if BuiltBy != "" {
		parts = append(parts, "by="+BuiltBy)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
