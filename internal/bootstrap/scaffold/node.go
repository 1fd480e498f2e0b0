package scaffold

import (
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/mod/semver"
)

// minNodeVersion is the floor below which the vite template is known to
// fail with confusing errors.
const minNodeVersion = "v18.0.0"

// NodeAdapter implements Adapter for the node runtime that backs both
// generators.
type NodeAdapter struct{}

func NewNodeAdapter() *NodeAdapter {
	return &NodeAdapter{}
}

// GetVersion returns the node version string (e.g. "v20.11.1").
// Returns ErrNotInstalled if node is not available.
func (n *NodeAdapter) GetVersion() (string, error) {
	cmd := exec.Command("node", "--version")
	output, err := cmd.Output()
	if err != nil {
		if execErr, ok := err.(*exec.Error); ok && execErr.Err == exec.ErrNotFound {
			return "", ErrNotInstalled
		}
		return "", fmt.Errorf("error running node: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CheckVersion reports whether the installed node meets the minimum.
// The returned version is whatever `node --version` printed.
func (n *NodeAdapter) CheckVersion() (string, bool, error) {
	version, err := n.GetVersion()
	if err != nil {
		return "", false, err
	}
	if !semver.IsValid(version) {
		// Unparseable output: don't block scaffolding on it.
		return version, true, nil
	}
	return version, semver.Compare(version, minNodeVersion) >= 0, nil
}

// GetInstallInstructions returns instructions for installing node.
func (n *NodeAdapter) GetInstallInstructions() string {
	return `node is not installed. Please install it using one of the following methods:

macOS (using Homebrew):
  brew install node

Ubuntu/Debian:
  curl -fsSL https://deb.nodesource.com/setup_lts.x | sudo -E bash -
  sudo apt-get install -y nodejs

Or visit https://nodejs.org/ for more installation options.`
}
