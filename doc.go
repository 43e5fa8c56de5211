// Package md2html converts Markdown documents to styled, self-contained HTML.
//
// # Quick Start
//
// Create a service and convert markdown:
//
//	svc := md2html.New()
//
//	result, err := svc.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Title:    "hello",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", []byte(result.HTML), 0644)
//
// The result contains the full HTML5 document (result.HTML), the title that
// ended up in the shell (result.Title), and any front matter extracted from
// the document head (result.FrontMatter).
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Encoding validation (input must be valid UTF-8)
//  2. Markdown preprocessing (line-ending normalization)
//  3. Front matter extraction (leading "---" delimited YAML block)
//  4. Markdown to HTML conversion via Goldmark (GFM, footnotes,
//     definition lists, syntax highlighting)
//  5. Document shell composition (HTML5 skeleton, title, inline CSS)
//
// # Strict HTML Handling
//
// Raw HTML embedded in the Markdown source is never passed through to the
// output. Both HTML blocks and inline tags are rendered as escaped literal
// text, so "<script>" arrives in the output as "&lt;script&gt;". There is no
// option to disable this.
//
// Malformed Markdown, on the other hand, is never an error: unmatched
// delimiters, broken tables, and dangling footnote references all degrade to
// renderable output. The only input the converter rejects is text that is
// not valid UTF-8.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	svc := md2html.New(
//	    md2html.WithHardWraps(),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := svc.Convert(ctx, md2html.Input{
//	    Markdown: content,
//	    Title:    "report",
//	    CSS:      stylesheet,
//	    Fragment: false,
//	})
//
// # Parallel Processing
//
// A Service holds no mutable state between conversions, so a single instance
// may be shared by concurrent goroutines. The md2html CLI nevertheless uses
// one Service per worker to keep batch conversion throughput predictable.
package md2html
