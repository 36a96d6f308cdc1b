package locate

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Kind identifies what an Artifact points at.
type Kind string

const (
	KindComponent  Kind = "component"
	KindStylesheet Kind = "stylesheet"
)

// Artifact is a file discovered inside the source project, identified by its
// path relative to the project root.
type Artifact struct {
	RelPath string
	Kind    Kind
}

// componentCandidates are the root-component basenames, in priority order.
// Matching is case-insensitive, so "App.tsx" and "app.tsx" are one entry.
var componentCandidates = []string{"app.tsx", "app.jsx", "app.ts", "app.js"}

// entryScripts are the well-known bundler entry points scanned when no
// component file is found directly, in priority order.
var entryScripts = []string{
	"src/main.tsx", "src/main.jsx", "src/main.ts", "src/main.js",
	"src/index.tsx", "src/index.jsx", "src/index.ts", "src/index.js",
	"main.tsx", "main.jsx", "index.tsx", "index.jsx",
}

// stylesheetCandidates are conventional global-stylesheet basenames.
// First match in directory-traversal order wins; matching is case-insensitive.
var stylesheetCandidates = map[string]bool{
	"index.css":   true,
	"main.css":    true,
	"app.css":     true,
	"global.css":  true,
	"globals.css": true,
	"style.css":   true,
	"styles.css":  true,
}

// excludedDirs are never descended into: dependency trees, version-control
// metadata, and prior build output.
var excludedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".hg":          true,
	".svn":         true,
	".next":        true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"coverage":     true,
}

// appImportRe captures the specifier of an import statement whose path ends
// in the root-component basename, e.g. `import App from "./App"`.
var appImportRe = regexp.MustCompile(`(?i)import\s+[\w{},*\s]+?from\s+['"]((?:[./\w@-]*/)?app)['"]`)

// Component locates the root component file under root. It first searches
// the tree for a candidate basename, then falls back to scanning the known
// entry scripts for an import of the component. The boolean is false when
// nothing was found; that is a valid outcome, not an error.
func Component(root string) (Artifact, bool) {
	if rel, ok := findByPriority(root, componentCandidates); ok {
		return Artifact{RelPath: rel, Kind: KindComponent}, true
	}
	if rel, ok := componentFromEntryScript(root); ok {
		return Artifact{RelPath: rel, Kind: KindComponent}, true
	}
	return Artifact{}, false
}

// Stylesheet locates the global stylesheet under root.
func Stylesheet(root string) (Artifact, bool) {
	var found string
	walkTree(root, func(rel string) bool {
		if stylesheetCandidates[strings.ToLower(filepath.Base(rel))] {
			found = rel
			return false
		}
		return true
	})
	if found == "" {
		return Artifact{}, false
	}
	return Artifact{RelPath: found, Kind: KindStylesheet}, true
}

// findByPriority walks the tree once and returns the match with the highest
// candidate priority; ties go to the file seen first in traversal order.
func findByPriority(root string, candidates []string) (string, bool) {
	bestRank := len(candidates)
	var best string
	walkTree(root, func(rel string) bool {
		base := strings.ToLower(filepath.Base(rel))
		for rank, cand := range candidates {
			if base == cand && rank < bestRank {
				bestRank = rank
				best = rel
				break
			}
		}
		// A rank-0 match cannot be beaten; stop early.
		return bestRank != 0
	})
	return best, best != ""
}

// componentFromEntryScript reads each well-known entry script and applies
// appImportRe to its contents. The first captured specifier is resolved
// relative to the entry script's directory and probed against the known
// script extensions. No further entry scripts are read once one matches.
func componentFromEntryScript(root string) (string, bool) {
	for _, entry := range entryScripts {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(entry)))
		if err != nil {
			continue
		}
		m := appImportRe.FindStringSubmatch(string(data))
		if m == nil {
			continue
		}
		spec := m[1]
		resolved := filepath.Join(filepath.Dir(filepath.FromSlash(entry)), filepath.FromSlash(spec))
		for _, ext := range scriptExtensions {
			rel := resolved + ext
			if _, err := os.Stat(filepath.Join(root, rel)); err == nil {
				return filepath.ToSlash(rel), true
			}
		}
	}
	return "", false
}

// walkTree visits every regular file under root in deterministic order,
// skipping excluded directories. The visit callback receives the path
// relative to root (slash-separated) and returns false to stop the walk.
func walkTree(root string, visit func(rel string) bool) {
	stop := false
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || stop {
			return filepath.SkipAll
		}
		if d.IsDir() {
			if path != root && excludedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if !visit(filepath.ToSlash(rel)) {
			stop = true
			return filepath.SkipAll
		}
		return nil
	})
}
