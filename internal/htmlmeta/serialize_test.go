package htmlmeta

import (
	"strings"
	"testing"
)

func TestMetadataLiteral(t *testing.T) {
	md := Metadata{
		Title:       "Example",
		Description: "Desc",
		Authors:     []string{"Jane"},
		Fields:      []Field{{Name: "keywords", Value: "a,b"}, {Name: "theme-color", Value: "#fff"}},
		OpenGraph: OpenGraph{
			Fields: []Field{{Name: "site_name", Value: "Example Site"}},
			Images: []string{"a.png", "b.png"},
		},
	}

	out := MetadataLiteral(md, true)

	for _, want := range []string{
		"export const metadata: Metadata = {",
		`title: "Example",`,
		`description: "Desc",`,
		`authors: [{ name: "Jane" }],`,
		`keywords: "a,b",`,
		`"theme-color": "#fff",`,
		"openGraph: {",
		`siteName: "Example Site",`,
		`images: ["a.png", "b.png"],`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("MetadataLiteral missing %q in:\n%s", want, out)
		}
	}
}

func TestMetadataLiteralJavaScript(t *testing.T) {
	out := MetadataLiteral(Default(), false)
	if strings.Contains(out, ": Metadata") {
		t.Errorf("JavaScript output carries a type annotation:\n%s", out)
	}
	if !strings.HasPrefix(out, "export const metadata = {") {
		t.Errorf("unexpected export line:\n%s", out)
	}
}

func TestMetadataLiteralOmitsEmptySections(t *testing.T) {
	out := MetadataLiteral(Default(), true)
	if strings.Contains(out, "openGraph") || strings.Contains(out, "authors") {
		t.Errorf("empty sections serialized:\n%s", out)
	}
}

func TestScriptElements(t *testing.T) {
	md := Metadata{Scripts: []ScriptDecl{
		{Src: "https://cdn.example.com/a.js"},
		{Inline: "console.log(`hi ${x}`)", ID: "inline-script-1"},
	}}

	out := ScriptElements(md, "        ")
	if !strings.Contains(out, `<Script src="https://cdn.example.com/a.js" strategy="beforeInteractive" />`) {
		t.Errorf("external script missing:\n%s", out)
	}
	if !strings.Contains(out, `<Script id="inline-script-1"`) {
		t.Errorf("inline script id missing:\n%s", out)
	}
	if !strings.Contains(out, "\\`hi \\${x}\\`") {
		t.Errorf("template escaping wrong:\n%s", out)
	}
}

func TestScriptElementsEmpty(t *testing.T) {
	if out := ScriptElements(Metadata{}, "  "); out != "" {
		t.Errorf("ScriptElements of empty record = %q, want empty", out)
	}
}

func TestJSString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{`has "quotes"`, `"has \"quotes\""`},
		{"line\nbreak", `"line\nbreak"`},
		{`back\slash`, `"back\\slash"`},
	}
	for _, tt := range tests {
		if got := jsString(tt.in); got != tt.want {
			t.Errorf("jsString(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"site_name", "siteName"},
		{"title", "title"},
		{"image_secure_url", "imageSecureUrl"},
	}
	for _, tt := range tests {
		if got := camelCase(tt.in); got != tt.want {
			t.Errorf("camelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
