// Package htmlmeta parses a legacy entry HTML document and turns its head
// section into a structured metadata record for the generated layout.
package htmlmeta

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Default values used when the entry document is missing or unparseable.
const (
	DefaultTitle       = "My App"
	DefaultDescription = "Migrated single-page application"
)

// Field is a single named metadata entry. Order of appearance in the source
// document is preserved.
type Field struct {
	Name  string
	Value string
}

// ScriptDecl describes one <script> element from the entry document.
// External scripts carry Src; inline scripts carry Inline and a generated ID
// (the target framework requires a key for inline scripts, the value itself
// has no meaning).
type ScriptDecl struct {
	Src    string
	Inline string
	ID     string
}

// OpenGraph groups og:* properties. Non-image keys keep their first value;
// og:image entries accumulate into Images in document order.
type OpenGraph struct {
	Fields []Field
	Images []string
}

// Metadata is the structured record extracted from the entry document.
// Once built it is treated as immutable and serialized verbatim into the
// emitted layout file.
type Metadata struct {
	Title       string
	Description string
	Authors     []string
	Fields      []Field
	OpenGraph   OpenGraph
	Scripts     []ScriptDecl
}

// HasOpenGraph reports whether any og:* property was present.
func (m *Metadata) HasOpenGraph() bool {
	return len(m.OpenGraph.Fields) > 0 || len(m.OpenGraph.Images) > 0
}

// Default returns the minimal record substituted when no entry document is
// available or it cannot be parsed.
func Default() Metadata {
	return Metadata{Title: DefaultTitle, Description: DefaultDescription}
}

// skippedNames are meta names the target framework handles natively.
var skippedNames = map[string]bool{
	"viewport": true,
}

// Extract parses htmlText and builds the metadata record. The underlying
// parser is tolerant of malformed markup; an error is only returned when the
// document cannot be processed at all, and callers substitute Default().
func Extract(htmlText string) (Metadata, error) {
	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return Default(), fmt.Errorf("parse entry document: %w", err)
	}

	md := Metadata{}
	ogSeen := map[string]bool{}
	inlineCount := 0

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Title:
				if md.Title == "" {
					md.Title = strings.TrimSpace(collectText(n))
				}
			case atom.Meta:
				collectMeta(&md, n, ogSeen)
			case atom.Script:
				collectScript(&md, n, &inlineCount)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if md.Title == "" {
		md.Title = DefaultTitle
	}
	if md.Description == "" {
		md.Description = DefaultDescription
	}
	return md, nil
}

// collectMeta classifies one <meta> element into the record.
func collectMeta(md *Metadata, n *html.Node, ogSeen map[string]bool) {
	// <meta charset="..."> is handled natively by the target framework.
	if attr(n, "charset") != "" {
		return
	}

	if prop := attr(n, "property"); strings.HasPrefix(prop, "og:") {
		collectOpenGraph(md, strings.TrimPrefix(prop, "og:"), attr(n, "content"), ogSeen)
		return
	}

	name := attr(n, "name")
	content := attr(n, "content")
	if name == "" {
		return
	}
	switch name {
	case "description":
		if md.Description == "" {
			md.Description = content
		}
	case "author":
		md.Authors = append(md.Authors, content)
	default:
		if !skippedNames[name] {
			md.Fields = append(md.Fields, Field{Name: name, Value: content})
		}
	}
}

// collectOpenGraph records one og:* property. og:image appends to Images;
// every other key keeps its first occurrence and ignores later duplicates.
func collectOpenGraph(md *Metadata, key, content string, seen map[string]bool) {
	if key == "image" {
		md.OpenGraph.Images = append(md.OpenGraph.Images, content)
		return
	}
	if seen[key] {
		return
	}
	seen[key] = true
	md.OpenGraph.Fields = append(md.OpenGraph.Fields, Field{Name: key, Value: content})
}

// collectScript records one <script> element, preserving document order.
// The bundler's own module entry point is skipped: it is replaced by the
// target framework's build, not carried over.
func collectScript(md *Metadata, n *html.Node, inlineCount *int) {
	if src := attr(n, "src"); src != "" {
		if attr(n, "type") == "module" && strings.Contains(src, "/src/") {
			return
		}
		md.Scripts = append(md.Scripts, ScriptDecl{Src: src})
		return
	}
	body := strings.TrimSpace(collectText(n))
	if body == "" {
		return
	}
	*inlineCount++
	md.Scripts = append(md.Scripts, ScriptDecl{
		Inline: body,
		ID:     fmt.Sprintf("inline-script-%d", *inlineCount),
	})
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// collectText concatenates all text nodes under n.
func collectText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
