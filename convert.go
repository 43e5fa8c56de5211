package md2html

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// htmlConverter abstracts Markdown to HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkConverter converts Markdown to an HTML body fragment using
// goldmark (pure Go).
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with GFM-style extensions
// and syntax highlighting. Raw HTML rendering is overridden so embedded HTML
// reaches the output only as escaped literal text.
func newGoldmarkConverter(cfg serviceConfig) *goldmarkConverter {
	rendererOptions := []renderer.Option{
		html.WithXHTML(), // Self-closing tags
	}
	if cfg.hardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			// Cell alignment as inline text-align styles regardless of the
			// XHTML option, which would otherwise pick the legacy attribute.
			extension.NewTable(
				extension.WithTableCellAlignMethod(extension.TableCellAlignStyle),
			),
			extension.Strikethrough,   // ~~deleted~~
			extension.TaskList,        // - [x] items with disabled checkboxes
			extension.Linkify,         // bare URL autolinks
			extension.Footnote,        // [^1] footnotes
			extension.DefinitionList,  // term / : definition pairs
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes for smaller HTML and external stylesheet control
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Stable, deterministic heading anchors
		),
		goldmark.WithRendererOptions(rendererOptions...),
	)

	// Registered below the default renderer's priority so HTML blocks and
	// inline raw HTML never reach goldmark's own handling (which would drop
	// them with a placeholder comment).
	md.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newStrictHTMLRenderer(), 100),
	))

	return &goldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML body fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// strictHTMLRenderer renders HTML blocks and inline raw HTML as escaped
// literal text. This is the "strict" guarantee: markup written in the
// source can never become live markup in the output.
type strictHTMLRenderer struct {
	writer html.Writer
}

func newStrictHTMLRenderer() *strictHTMLRenderer {
	return &strictHTMLRenderer{writer: html.DefaultWriter}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *strictHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
}

func (r *strictHTMLRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.HTMLBlock)
	if entering {
		for i := 0; i < n.Lines().Len(); i++ {
			line := n.Lines().At(i)
			r.writer.RawWrite(w, line.Value(source))
		}
	} else if n.HasClosure() {
		r.writer.RawWrite(w, n.ClosureLine.Value(source))
	}
	return ast.WalkContinue, nil
}

func (r *strictHTMLRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	n := node.(*ast.RawHTML)
	for i := 0; i < n.Segments.Len(); i++ {
		segment := n.Segments.At(i)
		r.writer.RawWrite(w, segment.Value(source))
	}
	return ast.WalkSkipChildren, nil
}
