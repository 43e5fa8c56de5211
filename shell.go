package md2html

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// htmlShellTemplate wraps a rendered body fragment in a complete HTML5
// document. The markdown-body class is the hook the bundled stylesheets
// target for layout and typography.
const htmlShellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>%s</title>
%s</head>
<body>
<article class="markdown-body">
%s</article>
</body>
</html>
`

// shellComposer defines the contract for document shell composition.
type shellComposer interface {
	ComposeShell(ctx context.Context, bodyHTML, title, css string) string
}

// documentShell wraps body fragments in a full HTML5 document.
type documentShell struct{}

// ComposeShell wraps a body fragment in a complete document with an escaped
// title and an optional inline stylesheet. It contains no parsing logic;
// the fragment is embedded as-is.
func (s *documentShell) ComposeShell(ctx context.Context, bodyHTML, title, css string) string {
	// Check for cancellation
	if ctx.Err() != nil {
		return bodyHTML
	}

	if title == "" {
		title = defaultTitle
	}

	var styleBlock string
	if css != "" {
		styleBlock = "<style>\n" + sanitizeCSS(css) + "\n</style>\n"
	}

	return fmt.Sprintf(htmlShellTemplate, html.EscapeString(title), styleBlock, bodyHTML)
}

// sanitizeCSS escapes sequences that could close the <style> block
// prematurely.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
