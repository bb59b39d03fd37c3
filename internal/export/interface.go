package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/zwift-workout/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(w *internal.CompiledWorkout, out io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "zwo", "zwift":
		return &ZWOExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "mrc":
		return &MRCExporter{}, nil
	case "plist":
		return &PlistExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(internal.SupportedFormats, ", "))
	}
}
