package classify

import (
	"math/rand"
	"testing"

	"github.com/drizzledoc/drizzledoc/internal/model"
)

func col(name string) *model.Column {
	return &model.Column{Name: name, Type: "integer", Nullable: true}
}

func refCol(name, table string) *model.Column {
	c := col(name)
	c.References = &model.ColumnReference{Table: table, Column: "id"}
	return c
}

func entity(name, tableName string, cols ...*model.Column) *model.Entity {
	e := &model.Entity{Name: name, TableName: tableName, Columns: cols}
	e.RecomputePrimaryKeys()
	return e
}

func TestClassify(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name   string
		entity *model.Entity
		want   model.EntityType
	}{
		{
			name:   "junction by name marker",
			entity: entity("postsToTags", "posts_to_tags", col("postId"), col("tagId")),
			want:   model.EntityTypeJunction,
		},
		{
			name:   "junction by id columns without marker",
			entity: entity("memberships", "memberships", col("userId"), col("teamId")),
			want:   model.EntityTypeJunction,
		},
		{
			name: "junction rejected when a primary key exists",
			entity: func() *model.Entity {
				pk := col("id")
				pk.PrimaryKey = true
				return entity("postsToTags", "posts_to_tags", pk, refCol("postId", "posts"), refCol("tagId", "tags"))
			}(),
			want: model.EntityTypeAssociation,
		},
		{
			name: "junction rejected when too wide",
			entity: entity("postsToTags", "posts_to_tags",
				col("postId"), col("tagId"), col("a"), col("b"), col("c"), col("d"), col("e")),
			want: model.EntityTypeTransactional,
		},
		{
			name: "association from two foreign keys",
			entity: func() *model.Entity {
				// A primary key keeps the junction rule from firing first.
				pk := col("id")
				pk.PrimaryKey = true
				return entity("grants", "grants", pk, refCol("userId", "users"), refCol("roleId", "roles"), col("grantedBy"))
			}(),
			want: model.EntityTypeAssociation,
		},
		{
			name:   "audit from name",
			entity: entity("auditLog", "audit_log", col("id"), col("payload")),
			want:   model.EntityTypeAudit,
		},
		{
			name:   "reference from small table with name column",
			entity: entity("countries", "countries", col("id"), col("name")),
			want:   model.EntityTypeReference,
		},
		{
			name:   "reference from name hint",
			entity: entity("orderStatus", "order_status", col("id"), col("code"), col("sort"), col("active"), col("weight")),
			want:   model.EntityTypeReference,
		},
		{
			name:   "transactional fallback",
			entity: entity("orders", "orders", col("id"), col("total"), col("placedAt")),
			want:   model.EntityTypeTransactional,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Classify(tt.entity)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestClassifyPure verifies classification is a pure function of the
// entity's shape: repeated calls agree.
func TestClassifyPure(t *testing.T) {
	rules := DefaultRules()
	e := entity("memberships", "memberships", col("userId"), col("teamId"))
	first := rules.Classify(e)
	for i := 0; i < 10; i++ {
		if got := rules.Classify(e); got != first {
			t.Fatalf("call %d: Classify() = %q, previously %q", i, got, first)
		}
	}
}

// TestClassifyColumnOrderIrrelevant verifies that shuffling columns (with
// primary keys recomputed) never changes the classification, since the
// rules depend on counts and name matching only.
func TestClassifyColumnOrderIrrelevant(t *testing.T) {
	rules := DefaultRules()
	rng := rand.New(rand.NewSource(1))

	shapes := []*model.Entity{
		entity("postsToTags", "posts_to_tags", col("postId"), col("tagId")),
		entity("grants", "grants", refCol("userId", "users"), refCol("roleId", "roles")),
		entity("countries", "countries", col("id"), col("name"), col("iso")),
		entity("orders", "orders", col("id"), col("total"), col("placedAt"), col("buyerId")),
	}

	for _, shape := range shapes {
		want := rules.Classify(shape)
		for trial := 0; trial < 20; trial++ {
			cols := make([]*model.Column, len(shape.Columns))
			copy(cols, shape.Columns)
			rng.Shuffle(len(cols), func(i, j int) { cols[i], cols[j] = cols[j], cols[i] })

			shuffled := &model.Entity{Name: shape.Name, TableName: shape.TableName, Columns: cols}
			shuffled.RecomputePrimaryKeys()
			if got := rules.Classify(shuffled); got != want {
				t.Fatalf("%s: shuffled classification = %q, want %q", shape.Name, got, want)
			}
		}
	}
}

func TestCustomJunctionMarkers(t *testing.T) {
	rules := DefaultRules()
	rules.JunctionMarkers = []string{"_join_"}

	e := entity("postsToTags", "posts_to_tags", col("a"), col("b"))
	if got := rules.Classify(e); got == model.EntityTypeJunction {
		t.Error("junction marker override should not match a 'to' name")
	}

	j := entity("posts_join_tags", "posts_join_tags", col("a"), col("b"))
	if got := rules.Classify(j); got != model.EntityTypeJunction {
		t.Errorf("Classify() = %q, want junction for custom marker", got)
	}
}

func TestDetectAuditColumns(t *testing.T) {
	cols := []*model.Column{
		col("id"),
		col("createdAt"),
		col("updated_at"),
		col("deletedAt"),
		col("version"),
	}
	audit := DetectAuditColumns(cols)
	if audit == nil {
		t.Fatal("DetectAuditColumns() = nil, want all four roles")
	}
	if audit.CreatedAt != "createdAt" || audit.UpdatedAt != "updated_at" ||
		audit.DeletedAt != "deletedAt" || audit.Version != "version" {
		t.Errorf("audit = %+v", audit)
	}
}

func TestDetectAuditColumnsLastWins(t *testing.T) {
	cols := []*model.Column{col("created_at"), col("createdAt")}
	audit := DetectAuditColumns(cols)
	if audit == nil || audit.CreatedAt != "createdAt" {
		t.Errorf("audit = %+v, want the later column to win", audit)
	}
}

func TestDetectAuditColumnsNone(t *testing.T) {
	if audit := DetectAuditColumns([]*model.Column{col("id"), col("name")}); audit != nil {
		t.Errorf("audit = %+v, want nil", audit)
	}
}
