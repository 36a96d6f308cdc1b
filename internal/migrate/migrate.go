// Package migrate runs the migration pipeline: detection, artifact
// location, metadata extraction, topology selection, emission, and the
// follow-up manifest/env/cleanup passes. Components run strictly one after
// another; the only state they share is the read-only setup descriptor.
package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nextport/nextport/internal/cleanup"
	"github.com/nextport/nextport/internal/detect"
	"github.com/nextport/nextport/internal/emit"
	"github.com/nextport/nextport/internal/envfile"
	"github.com/nextport/nextport/internal/htmlmeta"
	"github.com/nextport/nextport/internal/locate"
	"github.com/nextport/nextport/internal/manifest"
	"github.com/nextport/nextport/internal/route"
	"github.com/nextport/nextport/internal/terminal"
)

// fallbackComponent is the conventional component location assumed when
// none can be found. The generated import will dangle until the operator
// fixes it, which the warning spells out.
const fallbackComponent = "src/App"

// appDir is where the generated files live, relative to the project root.
const appDir = "app"

// catchAllDir is the catch-all segment directory under appDir.
const catchAllDir = "app/[[...slug]]"

// Report summarizes one migration run.
type Report struct {
	Setup      detect.Setup
	Emit       emit.Result
	Manifest   manifest.Summary
	EnvChanges []envfile.Change
	Removed    []string
	Warnings   []string
}

// warn records a warning and prints it.
func (r *Report) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
	terminal.Warning(msg)
}

// Run migrates the project at root. Setup was produced by the caller's
// detection pass and is only read here. I/O errors abort the run; NotFound
// conditions and parse failures degrade to defaults with a warning.
func Run(root string, setup detect.Setup) (*Report, error) {
	report := &Report{Setup: setup}
	steps := terminal.NewStepCounter(5)

	// ── Locate artifacts ───────────────────────────────────────
	steps.Step("Locating application entry points")
	component, componentFound := locate.Component(root)
	if componentFound {
		terminal.Detail("Root component", component.RelPath)
	} else {
		component = locate.Artifact{RelPath: fallbackComponent, Kind: locate.KindComponent}
		report.warn(fmt.Sprintf("root component not found; generated imports assume %s; adjust them if your component lives elsewhere", fallbackComponent))
	}

	stylesheet, stylesheetFound := locate.Stylesheet(root)
	if stylesheetFound {
		terminal.Detail("Global stylesheet", stylesheet.RelPath)
	} else {
		report.warn("no global stylesheet found; the generated layout imports none")
	}

	// ── Extract metadata from the entry document ───────────────
	steps.Step("Extracting page metadata")
	md := extractMetadata(root, report)

	// ── Choose topology and emit ───────────────────────────────
	steps.Step("Generating App Router files")
	pageDir := appDir
	if setup.UsesRouter {
		pageDir = catchAllDir
	}
	topology := route.Select(setup, root, locate.ToImportPath(pageDir, component.RelPath))
	if topology.Kind == route.CatchAll {
		terminal.Detail("Topology", fmt.Sprintf("catch-all route (%d static slugs)", len(topology.StaticSlugs)))
	} else {
		terminal.Detail("Topology", "single page")
	}

	inputs := emit.Inputs{
		Topology: topology,
		Metadata: md,
		Setup:    setup,
	}
	if stylesheetFound {
		inputs.StylesheetImport = locate.ToImportPath(appDir, stylesheet.RelPath)
	}

	res, err := emit.Emit(inputs, root)
	report.Emit = res
	if err != nil {
		return report, err
	}
	for _, f := range res.Written {
		terminal.Written(f)
	}
	for _, f := range res.Skipped {
		terminal.Skipped(f)
	}

	// ── Manifest, env files, cleanup ───────────────────────────
	steps.Step("Updating package.json and env files")
	sum, err := manifest.Update(root, setup)
	report.Manifest = sum
	if err != nil {
		return report, err
	}
	for _, pkg := range sum.Added {
		terminal.Detail("Added", pkg)
	}
	for _, pkg := range sum.Removed {
		terminal.Detail("Removed", pkg)
	}

	changes, err := envfile.RewriteAll(root)
	report.EnvChanges = changes
	if err != nil {
		return report, err
	}
	for _, ch := range changes {
		terminal.Detail(ch.File, fmt.Sprintf("%d variables renamed to %s*", len(ch.Renamed), envfile.NewPrefix))
	}

	steps.Step("Removing obsolete files")
	removed, err := cleanup.Remove(root)
	report.Removed = removed
	if err != nil {
		return report, err
	}
	for _, f := range removed {
		terminal.Detail("Deleted", f)
	}
	if _, err := cleanup.EnsureGitignore(root); err != nil {
		return report, err
	}

	return report, nil
}

// extractMetadata reads the legacy entry document and extracts its head
// metadata. Both a missing document and a parse failure degrade to the
// default record.
func extractMetadata(root string, report *Report) htmlmeta.Metadata {
	for _, rel := range []string{"index.html", "public/index.html"} {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			continue
		}
		md, err := htmlmeta.Extract(string(data))
		if err != nil {
			report.warn(fmt.Sprintf("could not parse %s (%v); using default metadata", rel, err))
			return htmlmeta.Default()
		}
		terminal.Detail("Entry document", rel)
		return md
	}
	report.warn("no entry HTML document found; using default metadata")
	return htmlmeta.Default()
}
