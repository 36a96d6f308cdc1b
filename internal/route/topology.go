// Package route decides the output topology of the migrated app: a single
// static page, or a catch-all dynamic route that hands every path to the
// original in-app router.
package route

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nextport/nextport/internal/detect"
)

// Kind tags the two possible topologies.
type Kind string

const (
	SinglePage Kind = "single-page"
	CatchAll   Kind = "catch-all"
)

// Topology is the chosen output shape. StaticSlugs is only populated for
// CatchAll: discovered sibling page slugs in directory-listing order, with
// the root path entry ("") always last.
type Topology struct {
	Kind        Kind
	ImportPath  string
	StaticSlugs []string
}

// RootSlug represents the application root path in StaticSlugs.
const RootSlug = ""

// pagesDir is the conventional directory scanned for pre-renderable slugs.
const pagesDir = "src/pages"

// Select chooses the topology for one migration run. Projects with an
// in-app router get a catch-all route so client-side path handling keeps
// working; everything else becomes a single static page. The decision is
// deterministic and total.
func Select(setup detect.Setup, root, importPath string) Topology {
	if !setup.UsesRouter {
		return Topology{Kind: SinglePage, ImportPath: importPath}
	}
	return Topology{
		Kind:        CatchAll,
		ImportPath:  importPath,
		StaticSlugs: append(siblingSlugs(root), RootSlug),
	}
}

// siblingSlugs lists pre-renderable page slugs: lower-cased basenames of
// files under the conventional pages directory, extension stripped,
// excluding underscore-prefixed files and index pages.
func siblingSlugs(root string) []string {
	entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(pagesDir)))
	if err != nil {
		return nil
	}
	var slugs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "_") {
			continue
		}
		slug := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		if slug == "" || slug == "index" {
			continue
		}
		slugs = append(slugs, slug)
	}
	return slugs
}
