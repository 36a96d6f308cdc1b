// Package manifest edits the project's package.json for the target
// framework: swaps the bundler dependencies for next and rewrites the
// run scripts. All edits are single-pass, order-independent key/value
// changes.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nextport/nextport/internal/detect"
)

// nextVersion is the dependency pin written for the next package.
const nextVersion = "^15.1.0"

// removedPackages are source-bundler dependencies that have no place in the
// migrated project.
var removedPackages = []string{
	"react-scripts",
	"vite",
	"@vitejs/plugin-react",
	"@vitejs/plugin-react-swc",
	"web-vitals",
}

// nextScripts replace the bundler's run scripts.
var nextScripts = map[string]string{
	"dev":   "next dev",
	"build": "next build",
	"start": "next start",
	"lint":  "next lint",
}

// Summary reports what Update changed.
type Summary struct {
	Added   []string
	Removed []string
}

// Update rewrites package.json at root. A missing manifest is an error
// (there is nothing to migrate without one); a malformed one propagates its
// parse error for the caller to report.
func Update(root string, setup detect.Setup) (Summary, error) {
	path := filepath.Join(root, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read package.json: %w", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return Summary{}, fmt.Errorf("parse package.json: %w", err)
	}

	var sum Summary
	deps := rawObject(m, "dependencies")
	devDeps := rawObject(m, "devDependencies")

	if _, ok := deps["next"]; !ok {
		deps["next"] = nextVersion
		sum.Added = append(sum.Added, "next")
	}
	if setup.CSSFramework == detect.CSSMUI {
		if _, ok := deps["@mui/material-nextjs"]; !ok {
			deps["@mui/material-nextjs"] = "^7.0.0"
			sum.Added = append(sum.Added, "@mui/material-nextjs")
		}
	}

	for _, pkg := range removedPackages {
		if _, ok := deps[pkg]; ok {
			delete(deps, pkg)
			sum.Removed = append(sum.Removed, pkg)
		}
		if _, ok := devDeps[pkg]; ok {
			delete(devDeps, pkg)
			sum.Removed = append(sum.Removed, pkg)
		}
	}

	scripts := rawObject(m, "scripts")
	for name, cmd := range nextScripts {
		scripts[name] = cmd
	}
	// The CRA eject script is meaningless after migration.
	delete(scripts, "eject")

	setObject(m, "dependencies", deps)
	if len(devDeps) > 0 {
		setObject(m, "devDependencies", devDeps)
	} else {
		delete(m, "devDependencies")
	}
	setObject(m, "scripts", scripts)

	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return sum, fmt.Errorf("encode package.json: %w", err)
	}
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return sum, fmt.Errorf("write package.json: %w", err)
	}
	return sum, nil
}

// rawObject decodes a string-valued object field, or returns an empty map.
func rawObject(m map[string]json.RawMessage, key string) map[string]string {
	obj := map[string]string{}
	if raw, ok := m[key]; ok {
		// Malformed sections are replaced rather than propagated; the rest
		// of the manifest survives.
		_ = json.Unmarshal(raw, &obj)
	}
	return obj
}

func setObject(m map[string]json.RawMessage, key string, obj map[string]string) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return
	}
	m[key] = raw
}
