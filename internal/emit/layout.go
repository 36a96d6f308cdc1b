package emit

import (
	"fmt"
	"strings"

	"github.com/nextport/nextport/internal/detect"
	"github.com/nextport/nextport/internal/htmlmeta"
)

// layoutVariant captures how one CSS framework changes the generated
// layout. The shared shell lives in renderLayout; a variant only
// contributes extra import lines and an optional wrapper element around
// {children}. This keeps the one-output-per-framework contract without six
// near-duplicate template literals.
type layoutVariant struct {
	imports   []string
	wrapOpen  string
	wrapClose string
	providers func(ts bool) string // extra client-boundary providers file
}

var layoutVariants = map[detect.CSSFramework]layoutVariant{
	detect.CSSNone:     {},
	detect.CSSTailwind: {},
	// styled-components and emotion need no layout changes for a
	// client-rendered app; their SSR support is switched on in next.config.
	detect.CSSStyled:  {},
	detect.CSSEmotion: {},
	detect.CSSMUI: {
		imports:   []string{`import { AppRouterCacheProvider } from "@mui/material-nextjs/v15-appRouter"`},
		wrapOpen:  "<AppRouterCacheProvider>",
		wrapClose: "</AppRouterCacheProvider>",
	},
	detect.CSSChakra: {
		imports:   []string{`import { Providers } from "./providers"`},
		wrapOpen:  "<Providers>",
		wrapClose: "</Providers>",
		providers: chakraProviders,
	},
}

// renderLayout builds the root layout file: metadata export, stylesheet
// import, recovered script tags, and the framework-specific wrapper.
func renderLayout(in Inputs, variant layoutVariant) string {
	ts := in.Setup.UsesTypeScript

	var b strings.Builder
	if ts {
		b.WriteString("import type { Metadata } from \"next\"\n")
	}
	if len(in.Metadata.Scripts) > 0 {
		b.WriteString("import Script from \"next/script\"\n")
	}
	for _, imp := range variant.imports {
		b.WriteString(imp + "\n")
	}
	if in.StylesheetImport != "" {
		fmt.Fprintf(&b, "import %q\n", in.StylesheetImport)
	}

	b.WriteString("\n")
	b.WriteString(htmlmeta.MetadataLiteral(in.Metadata, ts))
	b.WriteString("\n")

	if ts {
		b.WriteString(`export default function RootLayout({
  children,
}: {
  children: React.ReactNode
}) {
`)
	} else {
		b.WriteString(`export default function RootLayout({ children }) {
`)
	}

	indent := "        "
	children := indent + "{children}\n"
	if variant.wrapOpen != "" {
		children = indent + variant.wrapOpen + "\n" +
			indent + "  {children}\n" +
			indent + variant.wrapClose + "\n"
	}

	b.WriteString("  return (\n")
	b.WriteString("    <html lang=\"en\">\n")
	b.WriteString("      <body>\n")
	b.WriteString(children)
	b.WriteString(htmlmeta.ScriptElements(in.Metadata, indent))
	b.WriteString("      </body>\n")
	b.WriteString("    </html>\n")
	b.WriteString("  )\n")
	b.WriteString("}\n")
	return b.String()
}

// chakraProviders renders the client-boundary providers file Chakra UI
// needs under the App Router.
func chakraProviders(ts bool) string {
	signature := "export function Providers({ children }) {"
	if ts {
		signature = "export function Providers({ children }: { children: React.ReactNode }) {"
	}
	return `"use client"

import { ChakraProvider } from "@chakra-ui/react"

` + signature + `
  return <ChakraProvider>{children}</ChakraProvider>
}
`
}
