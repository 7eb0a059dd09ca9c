package drizzledoc

import (
	"github.com/drizzledoc/drizzledoc/internal/classify"
	"github.com/drizzledoc/drizzledoc/internal/model"
)

// Re-export important types for external consumption

// Set is the whole extraction result across all input documents.
type Set = model.Set

// Document holds the entities extracted from one source file.
type Document = model.Document

// Entity represents a single table declaration.
type Entity = model.Entity

// Column represents a table column built from a builder call chain.
type Column = model.Column

// ColumnReference describes a foreign-key style column reference.
type ColumnReference = model.ColumnReference

// Relation represents one named entry of a relation declaration.
type Relation = model.Relation

// AuditColumns maps audit roles to column names.
type AuditColumns = model.AuditColumns

// EntityType classifies the semantic role of an entity.
type EntityType = model.EntityType

// RelationType describes the cardinality of a relation.
type RelationType = model.RelationType

// Rules holds the classification heuristics.
type Rules = classify.Rules

// DefaultRules returns the stock classification heuristics.
func DefaultRules() Rules {
	return classify.DefaultRules()
}
