package emit

import (
	"fmt"
	"strings"

	"github.com/nextport/nextport/internal/detect"
)

// renderSinglePage builds the static page for projects without an in-app
// router: a plain client component rendering the original root component.
func renderSinglePage(in Inputs) string {
	return fmt.Sprintf(`"use client"

import App from %q

export default function Page() {
  return <App />
}
`, in.Topology.ImportPath)
}

// renderCatchAllPage builds the catch-all route page. Every application
// path lands here; rendering is deferred to the client boundary so the
// original router keeps handling navigation. The pre-declared slugs are
// rendered at build time, with the root path always included.
func renderCatchAllPage(in Inputs) string {
	var params []string
	for _, slug := range in.Topology.StaticSlugs {
		if slug == "" {
			params = append(params, `{ slug: [""] }`)
			continue
		}
		params = append(params, fmt.Sprintf(`{ slug: [%q] }`, slug))
	}

	return fmt.Sprintf(`import { ClientOnly } from "./client"

export function generateStaticParams() {
  return [%s]
}

export default function Page() {
  return <ClientOnly />
}
`, strings.Join(params, ", "))
}

// renderClientBoundary builds the client-boundary file for the catch-all
// route. The original component is loaded with SSR disabled because it
// assumes a browser environment.
func renderClientBoundary(in Inputs) string {
	return fmt.Sprintf(`"use client"

import dynamic from "next/dynamic"

const App = dynamic(() => import(%q), { ssr: false })

export function ClientOnly() {
  return <App />
}
`, in.Topology.ImportPath)
}

// renderNextConfig builds next.config.mjs: a custom build output directory
// when the source project had one, and the compiler switch for CSS-in-JS
// frameworks that need it.
func renderNextConfig(setup detect.Setup) string {
	var opts []string
	if setup.OutputDir != "" {
		opts = append(opts, fmt.Sprintf("  distDir: %q,", setup.OutputDir))
	}
	switch setup.CSSFramework {
	case detect.CSSStyled:
		opts = append(opts, "  compiler: {\n    styledComponents: true,\n  },")
	case detect.CSSEmotion:
		opts = append(opts, "  compiler: {\n    emotion: true,\n  },")
	}

	body := ""
	if len(opts) > 0 {
		body = strings.Join(opts, "\n") + "\n"
	}
	return fmt.Sprintf(`/** @type {import('next').NextConfig} */
const nextConfig = {
%s}

export default nextConfig
`, body)
}
