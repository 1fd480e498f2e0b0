package scaffold

import (
	"errors"
)

// ErrNotInstalled is returned when a required tool is not on PATH.
var ErrNotInstalled = errors.New("tool is not installed")

// Adapter wraps a third-party CLI the scaffolder depends on.
type Adapter interface {
	// GetVersion returns the version of the installed tool, or
	// ErrNotInstalled if the tool is not available.
	GetVersion() (string, error)

	// GetInstallInstructions returns instructions for installing the tool.
	GetInstallInstructions() string
}
