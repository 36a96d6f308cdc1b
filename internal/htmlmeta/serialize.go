package htmlmeta

import (
	"fmt"
	"strings"
)

// MetadataLiteral renders the record as the metadata export of the generated
// layout file. With typescript enabled the export is annotated with the
// framework's Metadata type (imported by the layout template).
func MetadataLiteral(md Metadata, typescript bool) string {
	var b strings.Builder
	if typescript {
		b.WriteString("export const metadata: Metadata = {\n")
	} else {
		b.WriteString("export const metadata = {\n")
	}
	fmt.Fprintf(&b, "  title: %s,\n", jsString(md.Title))
	fmt.Fprintf(&b, "  description: %s,\n", jsString(md.Description))

	if len(md.Authors) > 0 {
		entries := make([]string, len(md.Authors))
		for i, a := range md.Authors {
			entries[i] = fmt.Sprintf("{ name: %s }", jsString(a))
		}
		fmt.Fprintf(&b, "  authors: [%s],\n", strings.Join(entries, ", "))
	}

	for _, f := range md.Fields {
		fmt.Fprintf(&b, "  %s: %s,\n", jsKey(f.Name), jsString(f.Value))
	}

	if md.HasOpenGraph() {
		b.WriteString("  openGraph: {\n")
		for _, f := range md.OpenGraph.Fields {
			fmt.Fprintf(&b, "    %s: %s,\n", jsKey(camelCase(f.Name)), jsString(f.Value))
		}
		if len(md.OpenGraph.Images) > 0 {
			quoted := make([]string, len(md.OpenGraph.Images))
			for i, img := range md.OpenGraph.Images {
				quoted[i] = jsString(img)
			}
			fmt.Fprintf(&b, "    images: [%s],\n", strings.Join(quoted, ", "))
		}
		b.WriteString("  },\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// ScriptElements renders the recovered <script> declarations as Script
// components for the layout body, one per line at the given indent.
// Returns "" when the entry document had no scripts.
func ScriptElements(md Metadata, indent string) string {
	if len(md.Scripts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range md.Scripts {
		if s.Src != "" {
			fmt.Fprintf(&b, "%s<Script src=%s strategy=\"beforeInteractive\" />\n", indent, jsxString(s.Src))
			continue
		}
		fmt.Fprintf(&b, "%s<Script id=%s strategy=\"beforeInteractive\">{`%s`}</Script>\n",
			indent, jsxString(s.ID), escapeTemplate(s.Inline))
	}
	return b.String()
}

// jsString renders s as a double-quoted JavaScript string literal.
func jsString(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return `"` + r.Replace(s) + `"`
}

// jsxString renders s as a JSX attribute value.
func jsxString(s string) string {
	return jsString(s)
}

// escapeTemplate escapes backticks and interpolation markers so an inline
// script body survives inside a template literal.
func escapeTemplate(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return s
}

// jsKey renders a metadata key, quoting it when it is not a plain identifier
// (meta names like "theme-color" or og keys like "image:alt").
func jsKey(name string) string {
	if isIdentifier(name) {
		return name
	}
	return jsString(name)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '$':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// camelCase converts snake_case Open Graph keys to the target framework's
// camelCase convention, e.g. "site_name" → "siteName".
func camelCase(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
