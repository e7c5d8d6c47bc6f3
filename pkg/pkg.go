// Package pkg holds project-wide identity and metadata shared by the CLI
// and the core packages.
//
//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the solstice module embedded at build
// time. It is printed by the CLI when users invoke the version flag.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. It appears in help text and default config paths.
	Name = "solstice"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Component container bootstrap core"

	// PathEnv is the environment variable holding the resource search path,
	// a list of directories and archives separated by the platform list
	// separator.
	PathEnv = "SOLSTICE_PATH"
)
