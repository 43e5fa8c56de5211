package md2html

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// Service orchestrates the markdown-to-HTML pipeline.
type Service struct {
	cfg          serviceConfig
	preprocessor markdownPreprocessor
	converter    htmlConverter
	shell        shellComposer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithHardWraps).
func New(opts ...Option) *Service {
	s := &Service{
		preprocessor: &commonMarkPreprocessor{},
		shell:        &documentShell{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create converter if not injected (e.g., by tests); it depends on the
	// final option state.
	if s.converter == nil {
		s.converter = newGoldmarkConverter(s.cfg)
	}

	return s
}

// Convert runs the full pipeline and returns the rendered HTML.
// The context is used for cancellation.
//
// Content never fails the conversion: the only rejected input is text that
// is not valid UTF-8, reported as ErrInvalidEncoding with the byte offset
// of the first invalid byte.
func (s *Service) Convert(ctx context.Context, input Input) (Result, error) {
	if err := validateEncoding(input.Markdown); err != nil {
		return Result{}, err
	}

	// Preprocess markdown
	content := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	// Extract front matter before the engine sees the document
	fields, body := extractFrontMatter(content)

	// Convert to HTML
	bodyHTML, err := s.converter.ToHTML(ctx, body)
	if err != nil {
		return Result{}, fmt.Errorf("converting to HTML: %w", err)
	}

	result := Result{
		HTML:        bodyHTML,
		FrontMatter: fields,
		Title:       resolveTitle(input.Title, fields),
	}

	if input.Fragment {
		return result, nil
	}

	result.HTML = s.shell.ComposeShell(ctx, bodyHTML, result.Title, input.CSS)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return result, nil
}

// validateEncoding rejects input that is not valid UTF-8, reporting the
// offset of the first invalid byte.
func validateEncoding(content string) error {
	if utf8.ValidString(content) {
		return nil
	}

	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidEncoding, i)
		}
		i += size
	}

	return ErrInvalidEncoding
}

// resolveTitle picks the shell title. A "title" front matter field wins
// over the caller-provided title, which is typically derived from the
// source filename.
func resolveTitle(inputTitle string, fields map[string]string) string {
	if t := fields["title"]; t != "" {
		return t
	}
	if inputTitle != "" {
		return inputTitle
	}
	return defaultTitle
}
