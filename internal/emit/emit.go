// Package emit renders and writes the generated Next.js source files:
// layout, page, optional client-boundary files, next.config and the
// TypeScript declaration file. Every file is rendered fully in memory and
// written only if no variant of it already exists, so re-running a
// migration never overwrites anything.
package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nextport/nextport/internal/detect"
	"github.com/nextport/nextport/internal/htmlmeta"
	"github.com/nextport/nextport/internal/route"
)

// Inputs collects everything the emitter needs for one run.
type Inputs struct {
	Topology route.Topology
	Metadata htmlmeta.Metadata
	Setup    detect.Setup

	// StylesheetImport is the global stylesheet's import path relative to
	// the app directory, or "" when none was found.
	StylesheetImport string
}

// Result reports which files were created and which were skipped because
// they (or an extension variant) already existed.
type Result struct {
	Written []string
	Skipped []string
}

// Emit writes the target files under targetRoot. Rendering happens before
// any write; I/O errors propagate to the caller unwrapped into warnings.
func Emit(in Inputs, targetRoot string) (Result, error) {
	var res Result
	ext := scriptExt(in.Setup)
	variant := layoutVariants[in.Setup.CSSFramework]

	type file struct {
		rel     string // without extension
		exts    []string
		content string
	}
	files := []file{
		{
			rel:     "app/layout",
			exts:    scriptVariants,
			content: renderLayout(in, variant),
		},
	}

	switch in.Topology.Kind {
	case route.CatchAll:
		files = append(files,
			file{rel: "app/[[...slug]]/page", exts: scriptVariants, content: renderCatchAllPage(in)},
			file{rel: "app/[[...slug]]/client", exts: scriptVariants, content: renderClientBoundary(in)},
		)
	default:
		files = append(files,
			file{rel: "app/page", exts: scriptVariants, content: renderSinglePage(in)},
		)
	}

	if variant.providers != nil {
		files = append(files, file{rel: "app/providers", exts: scriptVariants, content: variant.providers(in.Setup.UsesTypeScript)})
	}

	files = append(files, file{rel: "next.config", exts: configVariants, content: renderNextConfig(in.Setup)})

	if in.Setup.UsesTypeScript {
		files = append(files, file{rel: "next-env.d", exts: []string{".ts"}, content: nextEnvDTS})
	}

	for _, f := range files {
		if err := writeIfAbsent(&res, targetRoot, f.rel, ext, f.exts, f.content); err != nil {
			return res, err
		}
	}
	return res, nil
}

// scriptVariants are the extensions under which a generated script file may
// already exist; presence of any of them makes the write a no-op.
var scriptVariants = []string{".tsx", ".jsx", ".js"}

// configVariants are the extensions a Next config may carry.
var configVariants = []string{".mjs", ".js", ".ts"}

// scriptExt returns the extension newly emitted script files should use.
func scriptExt(setup detect.Setup) string {
	if setup.UsesTypeScript {
		return ".tsx"
	}
	return ".jsx"
}

// writeIfAbsent writes content to rel+ext unless rel already exists under
// any of the variant extensions. Skips are recorded, never treated as
// errors: the emitted files double as the idempotence marker.
func writeIfAbsent(res *Result, targetRoot, rel, ext string, variants []string, content string) error {
	for _, v := range variants {
		candidate := filepath.Join(targetRoot, filepath.FromSlash(rel)+v)
		if _, err := os.Stat(candidate); err == nil {
			res.Skipped = append(res.Skipped, rel+v)
			return nil
		}
	}

	if !contains(variants, ext) {
		ext = variants[0]
	}
	target := filepath.Join(targetRoot, filepath.FromSlash(rel)+ext)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	res.Written = append(res.Written, rel+ext)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// nextEnvDTS is the standard Next.js TypeScript declaration file.
const nextEnvDTS = `/// <reference types="next" />
/// <reference types="next/image-types/global" />

// NOTE: This file should not be edited
// see https://nextjs.org/docs/app/building-your-application/configuring/typescript for more information.
`
