// Package cleanup removes source files made obsolete by the migration and
// keeps .gitignore aware of the new build artifacts.
package cleanup

import (
	"os"
	"path/filepath"
	"strings"
)

// obsoleteFiles is the fixed list of paths (relative to the project root)
// that the target framework replaces outright. Missing entries are not
// errors; the list is a superset covering both bundler models.
var obsoleteFiles = []string{
	"vite.config.ts",
	"vite.config.js",
	"vite.config.mjs",
	"index.html",
	"public/index.html",
	"src/main.tsx",
	"src/main.jsx",
	"src/main.ts",
	"src/main.js",
	"src/index.tsx",
	"src/index.jsx",
	"src/vite-env.d.ts",
	"src/react-app-env.d.ts",
	"src/reportWebVitals.ts",
	"src/reportWebVitals.js",
}

// Remove deletes the obsolete files under root and returns the paths it
// actually removed.
func Remove(root string) ([]string, error) {
	var removed []string
	for _, rel := range obsoleteFiles {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, err
		}
		removed = append(removed, rel)
	}
	return removed, nil
}

// gitignoreEntries are appended to .gitignore when absent.
var gitignoreEntries = []string{".next/", "next-env.d.ts"}

// EnsureGitignore appends the target framework's artifact entries to
// .gitignore, creating the file if needed. Already-present entries are not
// duplicated, so repeated runs are no-ops.
func EnsureGitignore(root string) (added []string, err error) {
	path := filepath.Join(root, ".gitignore")
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	existing := map[string]bool{}
	for _, line := range strings.Split(string(data), "\n") {
		existing[strings.TrimSpace(line)] = true
	}

	for _, entry := range gitignoreEntries {
		if !existing[entry] {
			added = append(added, entry)
		}
	}
	if len(added) == 0 {
		return nil, nil
	}

	var b strings.Builder
	b.Write(data)
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(added, "\n"))
	b.WriteString("\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return nil, err
	}
	return added, nil
}
