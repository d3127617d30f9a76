package conv

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var tgPolicy = bluemonday.NewPolicy()

func init() {
	// Allowed tags https://core.telegram.org/bots/api#html-style
	tgPolicy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	tgPolicy.AllowAttrs("href").OnElements("a")
}

// TerminalHTMLToTelegram converts a rendered terminal line into the HTML
// subset Telegram accepts: line breaks become newlines, anchors keep only
// their href and everything else is stripped to text.
func TerminalHTMLToTelegram(lineHTML string) string {
	text := strings.ReplaceAll(lineHTML, lineBreak, "\n")
	return tgPolicy.Sanitize(text)
}
