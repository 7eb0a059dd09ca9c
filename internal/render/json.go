package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/drizzledoc/drizzledoc/internal/model"
)

// JSONFormatter formats an entity set as indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Format writes the whole set as one JSON document.
func (f *JSONFormatter) Format(set *model.Set) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode entity set: %w", err)
	}
	return nil
}
