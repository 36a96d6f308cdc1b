package detect

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// pnpmWorkspace is the subset of pnpm-workspace.yaml we care about.
type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// isWorkspaceRoot reports whether root is a monorepo workspace root rather
// than a single application. Migrating a workspace root is almost always a
// mistake; the CLI warns and asks before proceeding.
func isWorkspaceRoot(root string) bool {
	data, err := os.ReadFile(filepath.Join(root, "pnpm-workspace.yaml"))
	if err == nil {
		var ws pnpmWorkspace
		if yaml.Unmarshal(data, &ws) == nil && len(ws.Packages) > 0 {
			return true
		}
	}

	// yarn/npm workspaces live in package.json.
	manifest, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return false
	}
	return manifestHasWorkspaces(manifest)
}

// manifestHasWorkspaces handles both shapes of the workspaces field:
// a plain array and the yarn object form {"packages": [...]}.
func manifestHasWorkspaces(manifest []byte) bool {
	var asArray struct {
		Workspaces []string `json:"workspaces"`
	}
	if json.Unmarshal(manifest, &asArray) == nil && len(asArray.Workspaces) > 0 {
		return true
	}
	var asObject struct {
		Workspaces struct {
			Packages []string `json:"packages"`
		} `json:"workspaces"`
	}
	if json.Unmarshal(manifest, &asObject) == nil && len(asObject.Workspaces.Packages) > 0 {
		return true
	}
	return false
}
