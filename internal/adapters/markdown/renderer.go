package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"eventsync/internal/domain"
)

type goldmarkRenderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a DescriptionRenderer backed by goldmark with GitHub-flavoured
// extensions. Raw HTML in the source is omitted from the output.
func NewRenderer() domain.DescriptionRenderer {
	return &goldmarkRenderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (r *goldmarkRenderer) Render(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
