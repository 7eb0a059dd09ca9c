// Package classify assigns semantic roles to entities and detects audit
// columns. The substring heuristics live in a Rules value so callers can
// override them instead of relying on hard-coded checks.
package classify

import (
	"strings"

	"github.com/drizzledoc/drizzledoc/internal/model"
)

// Rules holds the naming heuristics used for classification.
type Rules struct {
	// JunctionMarkers are substrings that mark a name as a junction table.
	JunctionMarkers []string
	// AuditNameHints are substrings of entity names that indicate an audit
	// or log table.
	AuditNameHints []string
	// ReferenceNameHints are substrings of entity names that indicate a
	// lookup/reference table.
	ReferenceNameHints []string
	// ReferenceColumnHints are substrings of column names that, on a small
	// table, indicate a lookup/reference table.
	ReferenceColumnHints []string
	// MaxJunctionColumns is the largest column count a junction may have.
	MaxJunctionColumns int
	// MaxReferenceColumns is the largest column count the column-hint
	// reference rule applies to.
	MaxReferenceColumns int
}

// DefaultRules returns the stock heuristics. The junction marker is a bare
// "to", which is known to false-positive on names that merely contain the
// substring; override JunctionMarkers to tighten it.
func DefaultRules() Rules {
	return Rules{
		JunctionMarkers:      []string{"to"},
		AuditNameHints:       []string{"log", "audit", "history"},
		ReferenceNameHints:   []string{"type", "status", "category"},
		ReferenceColumnHints: []string{"name", "title"},
		MaxJunctionColumns:   6,
		MaxReferenceColumns:  4,
	}
}

// HasJunctionMarker reports whether the name carries a junction marker.
func (r Rules) HasJunctionMarker(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range r.JunctionMarkers {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

func containsAny(name string, hints []string) bool {
	lower := strings.ToLower(name)
	for _, h := range hints {
		if h != "" && strings.Contains(lower, strings.ToLower(h)) {
			return true
		}
	}
	return false
}

// isIDColumn reports whether a column name ends in "id" without being the
// bare "id" column itself.
func isIDColumn(name string) bool {
	lower := strings.ToLower(name)
	return lower != "id" && strings.HasSuffix(lower, "id")
}

// Classify assigns an entity type from the entity's shape. It is a pure
// function of (name, table name, columns, primary keys, foreign-key count);
// rules are evaluated in order and the first match wins.
func (r Rules) Classify(e *model.Entity) model.EntityType {
	idCols := 0
	fkCount := 0
	for _, c := range e.Columns {
		if isIDColumn(c.Name) {
			idCols++
		}
		if c.References != nil {
			fkCount++
		}
	}

	junctionName := r.HasJunctionMarker(e.Name) || r.HasJunctionMarker(e.TableName)
	if (junctionName || idCols >= 2) &&
		len(e.Columns) <= r.MaxJunctionColumns &&
		len(e.PrimaryKeys) == 0 {
		return model.EntityTypeJunction
	}

	if fkCount >= 2 {
		return model.EntityTypeAssociation
	}

	if containsAny(e.Name, r.AuditNameHints) {
		return model.EntityTypeAudit
	}

	if len(e.Columns) <= r.MaxReferenceColumns {
		for _, c := range e.Columns {
			if containsAny(c.Name, r.ReferenceColumnHints) {
				return model.EntityTypeReference
			}
		}
	}
	if containsAny(e.Name, r.ReferenceNameHints) {
		return model.EntityTypeReference
	}

	return model.EntityTypeTransactional
}

// DetectAuditColumns scans column names for the conventional timestamp and
// version roles. When several columns match the same role the last one wins.
// Returns nil when nothing matches.
func DetectAuditColumns(cols []*model.Column) *model.AuditColumns {
	audit := &model.AuditColumns{}
	for _, c := range cols {
		lower := strings.ToLower(c.Name)
		switch {
		case strings.Contains(lower, "created") && strings.Contains(lower, "at"):
			audit.CreatedAt = c.Name
		case strings.Contains(lower, "updated") && strings.Contains(lower, "at"):
			audit.UpdatedAt = c.Name
		case strings.Contains(lower, "deleted") && strings.Contains(lower, "at"):
			audit.DeletedAt = c.Name
		case lower == "version" || lower == "_version":
			audit.Version = c.Name
		}
	}
	if audit.Empty() {
		return nil
	}
	return audit
}
