// Package envfile renames client-exposed environment variables across the
// project's .env files: REACT_APP_* and VITE_* become NEXT_PUBLIC_*.
// The rewrite is line-based so comments, ordering and blank lines survive.
package envfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// oldPrefixes are the source-framework prefixes for client-exposed vars.
var oldPrefixes = []string{"REACT_APP_", "VITE_"}

// NewPrefix is the target framework's client-exposure prefix.
const NewPrefix = "NEXT_PUBLIC_"

// Change records the renames applied to one file.
type Change struct {
	File    string
	Renamed map[string]string // old name → new name
}

// RewriteAll rewrites every .env* file directly under root.
// Files with no matching variables are left untouched.
func RewriteAll(root string) ([]Change, error) {
	matches, err := filepath.Glob(filepath.Join(root, ".env*"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	var changes []Change
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		ch, err := rewriteFile(path)
		if err != nil {
			return changes, err
		}
		if len(ch.Renamed) > 0 {
			ch.File = filepath.Base(path)
			changes = append(changes, ch)
		}
	}
	return changes, nil
}

// rewriteFile renames prefixed variables in a single env file.
// godotenv enumerates the declared keys so only real assignments are
// renamed, never occurrences inside values or comments.
func rewriteFile(path string) (Change, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Change{}, err
	}

	declared, err := godotenv.Parse(strings.NewReader(string(data)))
	if err != nil {
		// Unparseable env files are skipped with no changes; the operator
		// keeps whatever hand-rolled syntax is in there.
		return Change{}, nil
	}

	renames := map[string]string{}
	for key := range declared {
		for _, prefix := range oldPrefixes {
			if strings.HasPrefix(key, prefix) {
				renames[key] = NewPrefix + strings.TrimPrefix(key, prefix)
				break
			}
		}
	}
	if len(renames) == 0 {
		return Change{}, nil
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		for old, renamed := range renames {
			if !isAssignment(trimmed, old) {
				continue
			}
			// The key is at the start of the assignment, so replacing the
			// first occurrence cannot touch the value.
			lines[i] = strings.Replace(line, old, renamed, 1)
			break
		}
	}

	out := strings.Join(lines, "\n")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return Change{}, err
	}
	return Change{Renamed: renames}, nil
}

// isAssignment reports whether line assigns to key, allowing an optional
// "export " prefix and whitespace around the separator.
func isAssignment(line, key string) bool {
	s := strings.TrimPrefix(line, "export ")
	s = strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(s, key) {
		return false
	}
	rest := strings.TrimLeft(s[len(key):], " \t")
	return strings.HasPrefix(rest, "=")
}
