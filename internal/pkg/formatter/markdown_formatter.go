package formatter

import "strings"

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(title, text string) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(text)
	b.WriteString("\n")
	return []byte(b.String()), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (mf *MarkdownFormatter) FileExtension() string {
	return ".md"
}
