// Package render serializes an extracted entity set into the supported
// output formats. Renderers only read the model; serialization concerns
// never leak into the engine.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/drizzledoc/drizzledoc/internal/model"
)

// MarkdownFormatter formats an entity set as markdown.
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// Format writes the whole set in markdown format.
func (f *MarkdownFormatter) Format(set *model.Set) error {
	_, _ = fmt.Fprintln(f.writer, "# Schema")
	_, _ = fmt.Fprintln(f.writer)
	for _, doc := range set.Documents {
		if err := f.FormatDocument(doc); err != nil {
			return err
		}
	}
	return nil
}

// FormatDocument writes the entities of a single source document.
func (f *MarkdownFormatter) FormatDocument(doc *model.Document) error {
	for _, entity := range doc.Entities {
		if err := f.formatEntity(entity); err != nil {
			return err
		}
	}
	return nil
}

func (f *MarkdownFormatter) formatEntity(entity *model.Entity) error {
	_, _ = fmt.Fprintf(f.writer, "## %s\n\n", entity.TableName)
	_, _ = fmt.Fprintf(f.writer, "Entity type: %s\n\n", entity.Type)

	if entity.Comment != "" {
		_, _ = fmt.Fprintf(f.writer, "%s\n\n", entity.Comment)
	}

	_, _ = fmt.Fprintln(f.writer, "### Columns")
	_, _ = fmt.Fprintln(f.writer)

	for _, col := range entity.Columns {
		typeStr := col.Type
		if len(col.EnumValues) > 0 {
			typeStr = fmt.Sprintf("%s (%s)", col.Type, strings.Join(col.EnumValues, "|"))
		}
		constraints := columnConstraints(col)
		if constraints != "" {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %s, %s\n", col.Name, typeStr, constraints)
		} else {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %s\n", col.Name, typeStr)
		}
		if col.Comment != "" {
			_, _ = fmt.Fprintf(f.writer, "  %s\n", col.Comment)
		}
	}
	_, _ = fmt.Fprintln(f.writer)

	if len(entity.Relations) > 0 {
		_, _ = fmt.Fprintln(f.writer, "### Relations")
		_, _ = fmt.Fprintln(f.writer)
		for _, rel := range entity.Relations {
			f.formatRelation(rel)
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	if len(entity.Indexes) > 0 {
		_, _ = fmt.Fprintln(f.writer, "### Indexes")
		_, _ = fmt.Fprintln(f.writer)
		for _, idx := range entity.Indexes {
			marker := ""
			if idx.Unique {
				marker = " (unique)"
			}
			_, _ = fmt.Fprintf(f.writer, "- %s%s: %s\n", idx.Name, marker, strings.Join(idx.Columns, ", "))
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	if entity.AuditColumns != nil {
		_, _ = fmt.Fprintln(f.writer, "### Audit columns")
		_, _ = fmt.Fprintln(f.writer)
		audit := entity.AuditColumns
		if audit.CreatedAt != "" {
			_, _ = fmt.Fprintf(f.writer, "- created-at: %s\n", audit.CreatedAt)
		}
		if audit.UpdatedAt != "" {
			_, _ = fmt.Fprintf(f.writer, "- updated-at: %s\n", audit.UpdatedAt)
		}
		if audit.DeletedAt != "" {
			_, _ = fmt.Fprintf(f.writer, "- deleted-at: %s\n", audit.DeletedAt)
		}
		if audit.Version != "" {
			_, _ = fmt.Fprintf(f.writer, "- version: %s\n", audit.Version)
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	return nil
}

func (f *MarkdownFormatter) formatRelation(rel *model.Relation) {
	target := rel.RelatedTable
	if rel.FinalTarget != "" {
		target = fmt.Sprintf("%s (via %s)", rel.FinalTarget, rel.JunctionTable)
	}
	detail := ""
	if len(rel.Fields) > 0 {
		detail = fmt.Sprintf(" [%s → %s]", strings.Join(rel.Fields, ", "), strings.Join(rel.References, ", "))
	}
	_, _ = fmt.Fprintf(f.writer, "- %s → %s (%s)%s\n", rel.Name, target, rel.Type, detail)
}

func columnConstraints(col *model.Column) string {
	var parts []string
	if col.PrimaryKey {
		parts = append(parts, "primary key")
	}
	if !col.Nullable {
		parts = append(parts, "not null")
	}
	if col.Unique {
		parts = append(parts, "unique")
	}
	if col.DefaultValue != nil {
		parts = append(parts, fmt.Sprintf("default %s", *col.DefaultValue))
	}
	if col.Length != nil {
		parts = append(parts, fmt.Sprintf("length %d", *col.Length))
	}
	if col.Precision != nil {
		if col.Scale != nil {
			parts = append(parts, fmt.Sprintf("precision %d,%d", *col.Precision, *col.Scale))
		} else {
			parts = append(parts, fmt.Sprintf("precision %d", *col.Precision))
		}
	}
	if col.References != nil {
		ref := fmt.Sprintf("references %s.%s", col.References.Table, col.References.Column)
		if col.References.OnDelete != "" {
			ref += fmt.Sprintf(" on delete %s", col.References.OnDelete)
		}
		parts = append(parts, ref)
	}
	return strings.Join(parts, ", ")
}
