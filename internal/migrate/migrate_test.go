package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nextport/nextport/internal/detect"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

// viteProject lays out a minimal Vite + TypeScript SPA.
func viteProject(t *testing.T) string {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{
  "dependencies": { "react": "^18.2.0", "react-dom": "^18.2.0" },
  "devDependencies": { "vite": "^5.0.0" },
  "scripts": { "dev": "vite" }
}`)
	writeFile(t, root, "tsconfig.json", `{}`)
	writeFile(t, root, "index.html", `<!DOCTYPE html>
<html><head>
  <title>Demo</title>
  <meta name="description" content="A demo app">
</head><body><div id="root"></div></body></html>`)
	writeFile(t, root, "src/App.tsx", "export default function App() { return null }")
	writeFile(t, root, "src/main.tsx", `import App from "./App"`)
	writeFile(t, root, "src/index.css", "body {}")
	writeFile(t, root, ".env", "VITE_API=1\n")
	return root
}

func TestRunViteSinglePage(t *testing.T) {
	root := viteProject(t)
	setup := detect.Detect(root)

	report, err := Run(root, setup)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	layout := readFile(t, root, "app/layout.tsx")
	if !strings.Contains(layout, `title: "Demo",`) || !strings.Contains(layout, `description: "A demo app",`) {
		t.Errorf("layout metadata wrong:\n%s", layout)
	}
	if !strings.Contains(layout, `import "../src/index.css"`) {
		t.Errorf("layout stylesheet import wrong:\n%s", layout)
	}

	page := readFile(t, root, "app/page.tsx")
	if !strings.Contains(page, `import App from "../src/App"`) {
		t.Errorf("page import wrong:\n%s", page)
	}

	// Obsolete files removed, env renamed, manifest swapped.
	if _, err := os.Stat(filepath.Join(root, "index.html")); !os.IsNotExist(err) {
		t.Error("index.html survived cleanup")
	}
	if env := readFile(t, root, ".env"); !strings.Contains(env, "NEXT_PUBLIC_API=1") {
		t.Errorf("env not rewritten: %q", env)
	}
	if pkg := readFile(t, root, "package.json"); !strings.Contains(pkg, `"next"`) {
		t.Errorf("next not added:\n%s", pkg)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}
}

func TestRunRouterCatchAll(t *testing.T) {
	root := viteProject(t)
	writeFile(t, root, "package.json", `{
  "dependencies": { "react": "^18.2.0", "react-router-dom": "^6.22.0" },
  "devDependencies": { "vite": "^5.0.0" }
}`)
	writeFile(t, root, "src/pages/About.tsx", "")

	setup := detect.Detect(root)
	if !setup.UsesRouter {
		t.Fatal("setup.UsesRouter = false")
	}

	if _, err := Run(root, setup); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	page := readFile(t, root, "app/[[...slug]]/page.tsx")
	if !strings.Contains(page, `{ slug: ["about"] }`) || !strings.Contains(page, `{ slug: [""] }`) {
		t.Errorf("static params wrong:\n%s", page)
	}
	client := readFile(t, root, "app/[[...slug]]/client.tsx")
	if !strings.Contains(client, `import("../../src/App")`) {
		t.Errorf("client import wrong:\n%s", client)
	}
}

func TestRunMissingComponentWarnsAndFallsBack(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"react": "^18.2.0"}}`)

	report, err := Run(root, detect.Detect(root))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(report.Warnings) == 0 {
		t.Fatal("expected warnings for missing component")
	}

	page := readFile(t, root, "app/page.jsx")
	if !strings.Contains(page, `import App from "../src/App"`) {
		t.Errorf("fallback import missing:\n%s", page)
	}
}

func TestRunIdempotent(t *testing.T) {
	root := viteProject(t)
	setup := detect.Detect(root)

	if _, err := Run(root, setup); err != nil {
		t.Fatal(err)
	}
	layout := readFile(t, root, "app/layout.tsx")

	report, err := Run(root, setup)
	if err != nil {
		t.Fatalf("second Run() error: %v", err)
	}
	if len(report.Emit.Written) != 0 {
		t.Errorf("second run wrote files: %v", report.Emit.Written)
	}
	if got := readFile(t, root, "app/layout.tsx"); got != layout {
		t.Error("second run changed app/layout.tsx")
	}
}
