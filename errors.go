package md2html

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInvalidEncoding indicates the input is not valid UTF-8. This is the
	// only content-level condition the converter rejects; malformed Markdown
	// always degrades to renderable output instead.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")

	// ErrHTMLConversion indicates the underlying Markdown engine failed.
	ErrHTMLConversion = errors.New("HTML conversion failed")
)
