package md2html

// defaultTitle is used when neither the caller nor the front matter
// provides a document title.
const defaultTitle = "Document"

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content; empty input converts to an empty body
	Title    string // Shell <title>, typically derived from the source filename
	CSS      string // Stylesheet embedded in the shell (optional)
	Fragment bool   // Emit only the body fragment, skipping the shell
}

// Result holds the outcome of a conversion.
type Result struct {
	HTML        string            // Full document, or body fragment when Input.Fragment is set
	FrontMatter map[string]string // Extracted front matter; nil when the document has none
	Title       string            // Title used in the shell (front matter wins over Input.Title)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	hardWraps bool
}

// WithHardWraps renders single newlines inside paragraphs as <br> elements.
// By default soft line breaks are preserved as plain newlines, keeping the
// hard/soft break distinction of the source.
func WithHardWraps() Option {
	return func(s *Service) {
		s.cfg.hardWraps = true
	}
}
