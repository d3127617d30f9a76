package command

import (
	"fmt"
	"strings"
)

// ResponseFormatter builds the plain-text bodies of command responses.
type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Title(title string) string {
	return title + ":"
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("%s: %s", label, value)
}

// Rows renders two aligned columns indented by two spaces.
func (f *ResponseFormatter) Rows(rows [][2]string) string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = fmt.Sprintf("  %-*s  %s", width, row[0], row[1])
	}
	return strings.Join(lines, "\n")
}

func (f *ResponseFormatter) List(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

// Combine joins non-empty sections line by line.
func (f *ResponseFormatter) Combine(sections ...string) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
