package formatter

import (
	"fmt"

	"github.com/temenos/rfp-assistant/internal/entity"
)

// Formatter renders a titled plain-text report body into an export format.
type Formatter interface {
	Format(title, text string) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the formatter for a format query parameter.
func (f *Factory) Create(format string) (Formatter, error) {
	switch format {
	case "md", "markdown":
		return NewMarkdownFormatter(), nil
	case "pdf":
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedExport, format)
	}
}
