// Package model defines the normalized entity-relationship representation
// produced by parsing drizzle schema source files.
package model

// EntityType classifies the semantic role of an entity.
type EntityType string

const (
	EntityTypeReference     EntityType = "reference"
	EntityTypeTransactional EntityType = "transactional"
	EntityTypeAssociation   EntityType = "association"
	EntityTypeAudit         EntityType = "audit"
	EntityTypeJunction      EntityType = "many-to-many-junction"
)

// RelationType describes the cardinality of a relation.
type RelationType string

const (
	RelationOneToOne   RelationType = "one-to-one"
	RelationOneToMany  RelationType = "one-to-many"
	RelationManyToOne  RelationType = "many-to-one"
	RelationManyToMany RelationType = "many-to-many"
)

// Dialect identifies the database dialect a table was declared for.
type Dialect string

const (
	DialectPostgres Dialect = "pg"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
)

// DefaultNow is the sentinel stored as a column default when the builder
// chain carries a default-now modifier.
const DefaultNow = "CURRENT_TIMESTAMP"

// Entity represents a single table declaration.
type Entity struct {
	Name        string      `json:"name"`
	TableName   string      `json:"table_name"`
	Dialect     Dialect     `json:"dialect,omitempty"`
	Columns     []*Column   `json:"columns"`
	PrimaryKeys []string    `json:"primary_keys"`
	ForeignKeys []string    `json:"foreign_keys"`
	Indexes     []*Index    `json:"indexes,omitempty"`
	Checks      []*Check    `json:"checks,omitempty"`
	Relations   []*Relation `json:"relations,omitempty"`
	Comment     string      `json:"comment,omitempty"`
	Type        EntityType  `json:"entity_type"`
	// AuditColumns records naming-convention timestamp/version columns,
	// keyed by role. Nil when no column matches any role.
	AuditColumns *AuditColumns `json:"audit_columns,omitempty"`
}

// Column represents a single column built from a type-builder call chain.
type Column struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Nullable     bool             `json:"nullable"`
	DefaultValue *string          `json:"default_value,omitempty"`
	PrimaryKey   bool             `json:"primary_key"`
	Unique       bool             `json:"unique"`
	Length       *int             `json:"length,omitempty"`
	Precision    *int             `json:"precision,omitempty"`
	Scale        *int             `json:"scale,omitempty"`
	EnumValues   []string         `json:"enum_values,omitempty"`
	References   *ColumnReference `json:"references,omitempty"`
	Comment      string           `json:"comment,omitempty"`
}

// ColumnReference describes a foreign-key style reference attached to a
// column via a references modifier.
type ColumnReference struct {
	Table    string `json:"table"`
	Column   string `json:"column"`
	OnDelete string `json:"on_delete,omitempty"`
	OnUpdate string `json:"on_update,omitempty"`
}

// Relation represents one named entry of a relation declaration.
type Relation struct {
	Name         string       `json:"name"`
	Type         RelationType `json:"type"`
	RelatedTable string       `json:"related_table"`
	Fields       []string     `json:"fields,omitempty"`
	References   []string     `json:"references,omitempty"`
	RelationName string       `json:"relation_name,omitempty"`
	// IsSelfReferencing is derived from a relation-name hint only; it does
	// not compare the related table against the owning entity's table.
	IsSelfReferencing bool `json:"is_self_referencing"`
	// FinalTarget and JunctionTable are populated by the many-to-many
	// resolver when the relation points at a junction entity.
	FinalTarget   string `json:"final_target,omitempty"`
	JunctionTable string `json:"junction_table,omitempty"`
}

// AuditColumns maps audit roles to the column names that fill them.
type AuditColumns struct {
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	DeletedAt string `json:"deleted_at,omitempty"`
	Version   string `json:"version,omitempty"`
}

// Empty reports whether no audit role was detected.
func (a *AuditColumns) Empty() bool {
	return a.CreatedAt == "" && a.UpdatedAt == "" && a.DeletedAt == "" && a.Version == ""
}

// Index represents an index declared in a table's builder callback.
type Index struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns,omitempty"`
	Unique  bool     `json:"unique"`
}

// Check represents a check constraint declared in a table's builder callback.
type Check struct {
	Name string `json:"name"`
}

// Document holds the entities extracted from one source file, in
// declaration order.
type Document struct {
	Path     string    `json:"path"`
	Entities []*Entity `json:"entities"`
}

// Set is the whole parsed result across all input documents.
type Set struct {
	Documents []*Document `json:"documents"`
}

// Entities returns every entity across all documents in document order.
func (s *Set) Entities() []*Entity {
	var out []*Entity
	for _, doc := range s.Documents {
		out = append(out, doc.Entities...)
	}
	return out
}

// Find returns the entity with the given declared name, or the one whose
// table name matches when no declared name does. Returns nil if absent.
func (s *Set) Find(name string) *Entity {
	var byTable *Entity
	for _, doc := range s.Documents {
		for _, e := range doc.Entities {
			if e.Name == name {
				return e
			}
			if byTable == nil && e.TableName == name {
				byTable = e
			}
		}
	}
	return byTable
}

// RecomputePrimaryKeys rebuilds PrimaryKeys and ForeignKeys from the column
// flags, preserving column order.
func (e *Entity) RecomputePrimaryKeys() {
	pks := []string{}
	fks := []string{}
	for _, c := range e.Columns {
		if c.PrimaryKey {
			pks = append(pks, c.Name)
		}
		if c.References != nil {
			fks = append(fks, c.Name)
		}
	}
	e.PrimaryKeys = pks
	e.ForeignKeys = fks
}
