package conv

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags
	mdPolicy   = bluemonday.UGCPolicy()
)

// MarkdownToText flattens a Markdown document to plain terminal text.
// Links whose text differs from the target keep the target in parentheses
// so the terminal can linkify it again.
func MarkdownToText(md []byte) (string, error) {
	// 1. Render HTML
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	// 2. Sanitize tags
	sanitized := mdPolicy.SanitizeBytes(unsafeHTML)

	// 3. Flatten
	text, err := html2text.FromString(string(sanitized), html2text.Options{
		OmitLinks: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to flatten markdown: %w", err)
	}

	return strings.TrimSpace(text), nil
}
