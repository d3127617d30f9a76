package conv

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// linkPattern matches URL-like and e-mail-like substrings of already
// escaped text. The URL branch is tried first at each position, so an
// address inside a URL never becomes a separate link. An escaped
// apostrophe is part of an address only between local-part characters.
var linkPattern = regexp.MustCompile(`https?://[^\s<>]+|[A-Za-z0-9._%+\-]+(?:&#39;[A-Za-z0-9._%+\-]+)*@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// escaped characters that end a URL: quotes and angle brackets
var urlTerminators = []string{"&#34;", "&#39;", "&lt;", "&gt;"}

const (
	lineBreak  = "<br>"
	promptHTML = `<span class="prompt">$</span> `
)

// TextToTerminalHTML renders a terminal line as safe HTML: the text is
// escaped first, then URLs and e-mail addresses are wrapped in anchors and
// newlines become line breaks. Linkification only ever sees escaped text.
func TextToTerminalHTML(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	escaped := html.EscapeString(text)
	linked := Linkify(escaped)
	return strings.ReplaceAll(linked, "\n", lineBreak)
}

// EchoToTerminalHTML renders the echo of raw user input behind the prompt.
func EchoToTerminalHTML(raw string) string {
	return promptHTML + TextToTerminalHTML(raw)
}

// Linkify wraps URLs and e-mail addresses of escaped text in anchors.
// Text cut off a URL match is scanned again.
func Linkify(escaped string) string {
	var sb strings.Builder
	last, pos := 0, 0
	for pos < len(escaped) {
		m := linkPattern.FindStringIndex(escaped[pos:])
		if m == nil {
			break
		}
		start := pos + m[0]
		match := escaped[start : pos+m[1]]

		var link string
		if strings.HasPrefix(match, "http://") || strings.HasPrefix(match, "https://") {
			match = trimURL(match)
			if match == "http://" || match == "https://" {
				pos = start + len(match)
				continue
			}
			link = fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`, match, match)
		} else {
			link = fmt.Sprintf(`<a href="mailto:%s">%s</a>`, match, match)
		}

		sb.WriteString(escaped[last:start])
		sb.WriteString(link)
		last = start + len(match)
		pos = last
	}
	sb.WriteString(escaped[last:])

	return sb.String()
}

// trimURL drops escaped quotes and brackets and trailing sentence
// punctuation from a matched URL. A closing bracket stays when it
// balances an opening one inside the URL.
func trimURL(u string) string {
	for _, term := range urlTerminators {
		if idx := strings.Index(u, term); idx >= 0 {
			u = u[:idx]
		}
	}

	for len(u) > 0 {
		last := u[len(u)-1]
		switch {
		case strings.IndexByte(".,:!?", last) >= 0:
			u = u[:len(u)-1]
		case last == ')' && strings.Count(u, "(") < strings.Count(u, ")"):
			u = u[:len(u)-1]
		case last == ']' && strings.Count(u, "[") < strings.Count(u, "]"):
			u = u[:len(u)-1]
		case last == ';' && !strings.HasSuffix(u, "&amp;"):
			u = u[:len(u)-1]
		default:
			return u
		}
	}
	return u
}
