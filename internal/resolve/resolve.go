// Package resolve rewires many-to-many relations once the whole entity set
// exists. It must run after every document has been parsed: resolving
// earlier would silently miss junctions whose counterpart entity had not
// been seen yet.
package resolve

import (
	"strings"

	"github.com/drizzledoc/drizzledoc/internal/model"
)

// ManyToMany resolves junction entities across the whole set. For each
// entity classified as a junction, its related tables are determined from
// explicit column references or inferred from id-suffixed column names;
// when at least two are found, matching many-to-many relations on the
// related entities are pointed past the junction at their true target. The
// pass mutates relations in place and is idempotent. Entities and
// relations that do not match the conditions are left untouched.
func ManyToMany(set *model.Set) {
	for _, junction := range set.Entities() {
		if junction.Type != model.EntityTypeJunction {
			continue
		}
		related := relatedTables(junction, set)
		if len(related) < 2 {
			continue
		}
		for _, name := range related {
			entity := set.Find(name)
			if entity == nil {
				continue
			}
			target := otherTable(related, name)
			if target == "" {
				continue
			}
			for _, rel := range entity.Relations {
				if rel.Type != model.RelationManyToMany {
					continue
				}
				if rel.RelatedTable != junction.Name && rel.RelatedTable != junction.TableName {
					continue
				}
				rel.FinalTarget = target
				rel.JunctionTable = junction.Name
			}
		}
	}
}

// relatedTables determines which tables a junction connects: the distinct
// targets of its explicit column references when at least two exist,
// otherwise names inferred from its id-suffixed columns. Targets are
// deduplicated on purpose: a self-junction whose references all point at
// one table yields a single target here, falls through to inference, and
// ends up unrewired.
func relatedTables(junction *model.Entity, set *model.Set) []string {
	var explicit []string
	seen := map[string]bool{}
	for _, col := range junction.Columns {
		if col.References == nil || seen[col.References.Table] {
			continue
		}
		seen[col.References.Table] = true
		explicit = append(explicit, col.References.Table)
	}
	if len(explicit) >= 2 {
		return explicit
	}
	return inferredTables(junction, set)
}

// inferredTables guesses related tables from column names: a non-"id"
// column ending in "id" is stripped of the suffix and pluralized, and the
// result is accepted only when an entity with that exact name exists.
// The pluralizer is deliberately naive (trailing "y" becomes "ies",
// otherwise "s" is appended); irregular table names will not resolve.
func inferredTables(junction *model.Entity, set *model.Set) []string {
	var inferred []string
	seen := map[string]bool{}
	for _, col := range junction.Columns {
		lower := strings.ToLower(col.Name)
		if lower == "id" || !strings.HasSuffix(lower, "id") {
			continue
		}
		base := col.Name[:len(col.Name)-2]
		if base == "" {
			continue
		}
		name := pluralize(base)
		if seen[name] || set.Find(name) == nil {
			continue
		}
		seen[name] = true
		inferred = append(inferred, name)
	}
	return inferred
}

func pluralize(name string) string {
	if strings.HasSuffix(name, "y") {
		return name[:len(name)-1] + "ies"
	}
	return name + "s"
}

// otherTable returns the first related table different from the given one.
func otherTable(related []string, current string) string {
	for _, name := range related {
		if name != current {
			return name
		}
	}
	return ""
}
