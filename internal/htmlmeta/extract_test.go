package htmlmeta

import (
	"strings"
	"testing"
)

func TestExtractTitleAndDescription(t *testing.T) {
	doc := `<!DOCTYPE html>
<html>
<head>
  <title>Example</title>
  <meta name="description" content="Desc">
</head>
<body><div id="root"></div></body>
</html>`

	md, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if md.Title != "Example" {
		t.Errorf("Title = %q, want Example", md.Title)
	}
	if md.Description != "Desc" {
		t.Errorf("Description = %q, want Desc", md.Description)
	}
}

func TestExtractDefaults(t *testing.T) {
	md, err := Extract(`<html><head></head><body></body></html>`)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if md.Title != DefaultTitle {
		t.Errorf("Title = %q, want default %q", md.Title, DefaultTitle)
	}
	if md.Description != DefaultDescription {
		t.Errorf("Description = %q, want default %q", md.Description, DefaultDescription)
	}
}

func TestExtractSkipsHandledMeta(t *testing.T) {
	doc := `<html><head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta name="keywords" content="alpha,beta">
</head></html>`

	md, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(md.Fields) != 1 {
		t.Fatalf("Fields = %v, want only keywords", md.Fields)
	}
	if md.Fields[0].Name != "keywords" || md.Fields[0].Value != "alpha,beta" {
		t.Errorf("Fields[0] = %v, want keywords=alpha,beta", md.Fields[0])
	}
}

func TestExtractAuthors(t *testing.T) {
	doc := `<html><head>
  <meta name="author" content="Jane Doe">
  <meta name="author" content="John Doe">
</head></html>`

	md, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(md.Authors) != 2 || md.Authors[0] != "Jane Doe" || md.Authors[1] != "John Doe" {
		t.Errorf("Authors = %v, want [Jane Doe John Doe]", md.Authors)
	}
	if len(md.Fields) != 0 {
		t.Errorf("Fields = %v, author must not appear as a flat field", md.Fields)
	}
}

func TestExtractOpenGraphImagesAppend(t *testing.T) {
	doc := `<html><head>
  <meta property="og:title" content="First">
  <meta property="og:title" content="Second">
  <meta property="og:image" content="a.png">
  <meta property="og:image" content="b.png">
</head></html>`

	md, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(md.OpenGraph.Images) != 2 || md.OpenGraph.Images[0] != "a.png" || md.OpenGraph.Images[1] != "b.png" {
		t.Errorf("Images = %v, want [a.png b.png] in document order", md.OpenGraph.Images)
	}
	// Non-image duplicates keep the first occurrence.
	if len(md.OpenGraph.Fields) != 1 || md.OpenGraph.Fields[0].Value != "First" {
		t.Errorf("OpenGraph.Fields = %v, want single og:title=First", md.OpenGraph.Fields)
	}
}

func TestExtractScripts(t *testing.T) {
	doc := `<html><head>
  <script src="https://cdn.example.com/analytics.js"></script>
  <script>window.dataLayer = window.dataLayer || []</script>
  <script>console.log("second inline")</script>
</head></html>`

	md, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(md.Scripts) != 3 {
		t.Fatalf("Scripts = %v, want 3 entries", md.Scripts)
	}
	if md.Scripts[0].Src != "https://cdn.example.com/analytics.js" {
		t.Errorf("Scripts[0].Src = %q", md.Scripts[0].Src)
	}
	if md.Scripts[1].ID != "inline-script-1" || !strings.Contains(md.Scripts[1].Inline, "dataLayer") {
		t.Errorf("Scripts[1] = %+v, want inline with generated id", md.Scripts[1])
	}
	if md.Scripts[2].ID != "inline-script-2" {
		t.Errorf("Scripts[2].ID = %q, want inline-script-2", md.Scripts[2].ID)
	}
}

func TestExtractSkipsBundlerEntryScript(t *testing.T) {
	doc := `<html><body>
  <div id="root"></div>
  <script type="module" src="/src/main.tsx"></script>
  <script src="/legacy.js"></script>
</body></html>`

	md, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(md.Scripts) != 1 || md.Scripts[0].Src != "/legacy.js" {
		t.Errorf("Scripts = %v, want only /legacy.js", md.Scripts)
	}
}

func TestExtractMalformedDocument(t *testing.T) {
	// The parser is tolerant; truncated markup still yields a record.
	md, err := Extract(`<html><head><title>Broken`)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if md.Title != "Broken" {
		t.Errorf("Title = %q, want Broken", md.Title)
	}
}
