package md2html

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// frontMatterDelimiter opens and closes a front matter block. The opening
// line must be the very first line of the document.
const frontMatterDelimiter = "---"

// extractFrontMatter splits a leading YAML front matter block from content.
// It returns the parsed fields and the remaining document body. When the
// document has no front matter, the fields are nil and the content is
// returned unchanged.
//
// Degradation rules, in line with the no-fail policy for content:
//   - no closing delimiter: nothing is extracted; the opening "---" stays
//     in the body and renders per normal block rules (thematic break)
//   - region is not a valid key/value mapping: nothing is extracted
//   - empty region: an empty, non-nil field map is returned
func extractFrontMatter(content string) (map[string]string, string) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || lines[0] != frontMatterDelimiter {
		return nil, content
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == frontMatterDelimiter {
			closing = i
			break
		}
	}
	if closing == -1 {
		return nil, content
	}

	block := strings.Join(lines[1:closing], "\n")
	body := strings.Join(lines[closing+1:], "\n")

	if strings.TrimSpace(block) == "" {
		return map[string]string{}, body
	}

	fields, err := parseFrontMatterBlock(block)
	if err != nil {
		// Not a mapping (or not YAML at all): leave the region in the body.
		return nil, content
	}

	return fields, body
}

// parseFrontMatterBlock parses a front matter region into string fields.
// Scalar values are stringified; nested values are flattened with their
// default formatting, which keeps the field map total over any valid YAML.
func parseFrontMatterBlock(block string) (map[string]string, error) {
	var raw map[string]any
	if err := yamlutil.Unmarshal([]byte(block), &raw); err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case nil:
			fields[key] = ""
		default:
			fields[key] = fmt.Sprint(v)
		}
	}
	return fields, nil
}
