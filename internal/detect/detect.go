// Package detect inspects a source project tree and produces the setup
// descriptor that drives the migration: package manager, TypeScript and
// router usage, CSS framework, and custom build output directory.
package detect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
)

// CSSFramework enumerates the styling setups the layout emitter knows.
type CSSFramework string

const (
	CSSNone     CSSFramework = "none"
	CSSTailwind CSSFramework = "tailwind"
	CSSStyled   CSSFramework = "styled"
	CSSEmotion  CSSFramework = "emotion"
	CSSMUI      CSSFramework = "mui"
	CSSChakra   CSSFramework = "chakra"
)

// PackageManager enumerates supported package managers.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// SourceKind identifies the bundler model of the source project.
type SourceKind string

const (
	SourceVite    SourceKind = "vite"
	SourceCRA     SourceKind = "cra"
	SourceUnknown SourceKind = "unknown"
)

// Setup is the read-only snapshot of the source project taken before
// migration begins. It is created once per run and never mutated afterwards.
type Setup struct {
	UsesTypeScript bool
	UsesRouter     bool
	CSSFramework   CSSFramework
	PackageManager PackageManager
	OutputDir      string // custom build output dir, "" for the default
	SourceKind     SourceKind
	WorkspaceRoot  bool
}

// routerPackages mark in-app client-side routing.
var routerPackages = []string{"react-router-dom", "react-router", "@tanstack/react-router"}

// cssFrameworkPackages map a dependency to a layout variant, in priority
// order: the first installed framework wins.
var cssFrameworkPackages = []struct {
	pkg       string
	framework CSSFramework
}{
	{"tailwindcss", CSSTailwind},
	{"styled-components", CSSStyled},
	{"@emotion/react", CSSEmotion},
	{"@mui/material", CSSMUI},
	{"@chakra-ui/react", CSSChakra},
}

// outDirRe captures a custom outDir from a vite config.
var outDirRe = regexp.MustCompile(`outDir:\s*['"]([^'"]+)['"]`)

// Detect builds the setup descriptor for the project at root.
// A missing or malformed package.json degrades to defaults rather than
// failing: the caller is expected to warn, not abort.
func Detect(root string) Setup {
	deps := readDependencies(root)

	s := Setup{
		CSSFramework:   CSSNone,
		PackageManager: detectPackageManager(root),
		SourceKind:     detectSourceKind(root, deps),
		WorkspaceRoot:  isWorkspaceRoot(root),
	}

	if _, err := os.Stat(filepath.Join(root, "tsconfig.json")); err == nil {
		s.UsesTypeScript = true
	}

	for _, pkg := range routerPackages {
		if _, ok := deps[pkg]; ok {
			s.UsesRouter = true
			break
		}
	}

	for _, c := range cssFrameworkPackages {
		if _, ok := deps[c.pkg]; ok {
			s.CSSFramework = c.framework
			break
		}
	}

	s.OutputDir = detectOutputDir(root)
	return s
}

// readDependencies merges dependencies and devDependencies from package.json.
// Returns an empty map when the manifest is missing or unparseable.
func readDependencies(root string) map[string]string {
	deps := map[string]string{}
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return deps
	}
	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
		Workspaces      []string          `json:"workspaces"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return deps
	}
	for k, v := range manifest.Dependencies {
		deps[k] = v
	}
	for k, v := range manifest.DevDependencies {
		deps[k] = v
	}
	return deps
}

// detectPackageManager infers the package manager from the lockfile present.
// npm is the fallback when no lockfile is recognized.
func detectPackageManager(root string) PackageManager {
	checks := []struct {
		file string
		pm   PackageManager
	}{
		{"bun.lockb", Bun},
		{"bun.lock", Bun},
		{"pnpm-lock.yaml", PNPM},
		{"yarn.lock", Yarn},
		{"package-lock.json", NPM},
	}
	for _, c := range checks {
		if _, err := os.Stat(filepath.Join(root, c.file)); err == nil {
			return c.pm
		}
	}
	return NPM
}

// detectSourceKind classifies the bundler model of the source project.
func detectSourceKind(root string, deps map[string]string) SourceKind {
	if _, ok := deps["react-scripts"]; ok {
		return SourceCRA
	}
	if _, ok := deps["vite"]; ok {
		return SourceVite
	}
	for _, name := range []string{"vite.config.ts", "vite.config.js", "vite.config.mjs"} {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			return SourceVite
		}
	}
	return SourceUnknown
}

// detectOutputDir reads a custom outDir from the vite config, if any.
func detectOutputDir(root string) string {
	for _, name := range []string{"vite.config.ts", "vite.config.js", "vite.config.mjs"} {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		if m := outDirRe.FindStringSubmatch(string(data)); m != nil {
			return m[1]
		}
	}
	return ""
}
