package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/drizzledoc/drizzledoc/internal/model"
)

// TableFormatter renders a terminal summary of the entity set.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// Format writes one summary row per entity.
func (f *TableFormatter) Format(set *model.Set) error {
	t := table.NewWriter()
	t.SetOutputMirror(f.writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Entity", "Table", "Type", "Columns", "Relations", "Primary Keys"})
	for _, entity := range set.Entities() {
		t.AppendRow(table.Row{
			entity.Name,
			entity.TableName,
			string(entity.Type),
			len(entity.Columns),
			len(entity.Relations),
			len(entity.PrimaryKeys),
		})
	}
	t.Render()
	return nil
}

// Stats renders the entity-type distribution and relation cardinality
// counts of the set.
func Stats(w io.Writer, set *model.Set) {
	entityCounts := map[model.EntityType]int{}
	relationCounts := map[model.RelationType]int{}
	total := 0
	for _, entity := range set.Entities() {
		entityCounts[entity.Type]++
		total++
		for _, rel := range entity.Relations {
			relationCounts[rel.Type]++
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Entity Type", "Count"})
	for _, et := range []model.EntityType{
		model.EntityTypeReference,
		model.EntityTypeTransactional,
		model.EntityTypeAssociation,
		model.EntityTypeAudit,
		model.EntityTypeJunction,
	} {
		if entityCounts[et] > 0 {
			t.AppendRow(table.Row{string(et), entityCounts[et]})
		}
	}
	t.AppendFooter(table.Row{"total", total})
	t.Render()

	if len(relationCounts) == 0 {
		return
	}

	r := table.NewWriter()
	r.SetOutputMirror(w)
	r.SetStyle(table.StyleLight)
	r.AppendHeader(table.Row{"Relation Type", "Count"})
	for _, rt := range []model.RelationType{
		model.RelationOneToOne,
		model.RelationOneToMany,
		model.RelationManyToOne,
		model.RelationManyToMany,
	} {
		if relationCounts[rt] > 0 {
			r.AppendRow(table.Row{string(rt), relationCounts[rt]})
		}
	}
	r.Render()
}
