// Package locate finds the source project's root component and global
// stylesheet and converts their locations into import specifiers usable
// from the generated Next.js files.
package locate

import (
	"path/filepath"
	"strings"
)

// scriptExtensions are stripped from the end of an import path, longest first
// so ".tsx" wins over ".ts".
var scriptExtensions = []string{".tsx", ".jsx", ".ts", ".js"}

// ToImportPath converts the path of a source file into an import specifier
// relative to fromDir. The result always uses forward slashes, always starts
// with "./" or "../", and carries no script extension. The function is pure:
// neither path needs to exist on disk.
func ToImportPath(fromDir, toFile string) string {
	rel, err := filepath.Rel(fromDir, toFile)
	if err != nil {
		// Different volume roots (Windows) or similar; fall back to the
		// target path as given.
		rel = toFile
	}

	p := filepath.ToSlash(rel)
	for _, ext := range scriptExtensions {
		if strings.HasSuffix(p, ext) {
			p = strings.TrimSuffix(p, ext)
			break
		}
	}

	if !strings.HasPrefix(p, "./") && !strings.HasPrefix(p, "../") {
		p = "./" + p
	}
	return p
}
