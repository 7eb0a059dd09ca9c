package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drizzledoc/drizzledoc/internal/model"
)

func sampleSet() *model.Set {
	defaultNow := model.DefaultNow
	length := 255
	return &model.Set{
		Documents: []*model.Document{
			{
				Path: "schema.ts",
				Entities: []*model.Entity{
					{
						Name:      "users",
						TableName: "users",
						Dialect:   model.DialectPostgres,
						Type:      model.EntityTypeTransactional,
						Comment:   "Registered accounts.",
						Columns: []*model.Column{
							{Name: "id", Type: "serial", PrimaryKey: true, Nullable: false},
							{Name: "email", Type: "varchar", Nullable: false, Unique: true, Length: &length, Comment: "Login identity."},
							{Name: "role", Type: "text", Nullable: true, EnumValues: []string{"admin", "member"}},
							{Name: "createdAt", Type: "timestamp", Nullable: false, DefaultValue: &defaultNow},
						},
						PrimaryKeys: []string{"id"},
						Relations: []*model.Relation{
							{Name: "posts", Type: model.RelationOneToMany, RelatedTable: "posts"},
							{
								Name:          "tags",
								Type:          model.RelationManyToMany,
								RelatedTable:  "usersToTags",
								FinalTarget:   "tags",
								JunctionTable: "usersToTags",
							},
						},
						Indexes: []*model.Index{
							{Name: "email_idx", Columns: []string{"email"}, Unique: true},
						},
						AuditColumns: &model.AuditColumns{CreatedAt: "createdAt"},
					},
					{
						Name:      "posts",
						TableName: "posts",
						Dialect:   model.DialectPostgres,
						Type:      model.EntityTypeTransactional,
						Columns: []*model.Column{
							{Name: "id", Type: "serial", PrimaryKey: true},
							{
								Name:     "authorId",
								Type:     "integer",
								Nullable: false,
								References: &model.ColumnReference{
									Table:    "users",
									Column:   "id",
									OnDelete: "cascade",
								},
							},
						},
						PrimaryKeys: []string{"id"},
						ForeignKeys: []string{"authorId"},
						Relations: []*model.Relation{
							{
								Name:         "author",
								Type:         model.RelationManyToOne,
								RelatedTable: "users",
								Fields:       []string{"authorId"},
								References:   []string{"id"},
							},
						},
					},
				},
			},
		},
	}
}

func TestMarkdownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownFormatter(&buf).Format(sampleSet()); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Schema",
		"## users",
		"## posts",
		"Entity type: transactional",
		"Registered accounts.",
		"- **id:** serial, primary key, not null",
		"- **email:** varchar, not null, unique, length 255",
		"  Login identity.",
		"- **role:** text (admin|member)",
		"- **createdAt:** timestamp, not null, default CURRENT_TIMESTAMP",
		"- posts → posts (one-to-many)",
		"- tags → tags (via usersToTags) (many-to-many)",
		"- email_idx (unique): email",
		"### Audit columns",
		"- created-at: createdAt",
		"- **authorId:** integer, not null, references users.id on delete cascade",
		"- author → users (many-to-one) [authorId → id]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n%s", want, out)
		}
	}
}

func TestMarkdownOmitsEmptySections(t *testing.T) {
	set := &model.Set{Documents: []*model.Document{{
		Path: "schema.ts",
		Entities: []*model.Entity{{
			Name:      "settings",
			TableName: "settings",
			Type:      model.EntityTypeReference,
			Columns:   []*model.Column{{Name: "key", Type: "text", Nullable: true}},
		}},
	}}}

	var buf bytes.Buffer
	if err := NewMarkdownFormatter(&buf).Format(set); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	out := buf.String()

	for _, absent := range []string{"### Relations", "### Indexes", "### Audit columns"} {
		if strings.Contains(out, absent) {
			t.Errorf("markdown output should not contain %q\n%s", absent, out)
		}
	}
}

func TestJSONFormatRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(sampleSet()); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var decoded model.Set
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Documents) != 1 || len(decoded.Documents[0].Entities) != 2 {
		t.Fatalf("decoded set has wrong shape: %+v", decoded)
	}
	users := decoded.Documents[0].Entities[0]
	if users.Name != "users" || users.Type != model.EntityTypeTransactional {
		t.Errorf("decoded entity = %+v", users)
	}
	if users.Columns[1].Length == nil || *users.Columns[1].Length != 255 {
		t.Errorf("length did not survive the round trip: %+v", users.Columns[1])
	}
}

func TestTableFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Format(sampleSet()); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"ENTITY", "users", "posts", "transactional"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q\n%s", want, out)
		}
	}
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	Stats(&buf, sampleSet())
	out := buf.String()

	for _, want := range []string{
		"ENTITY TYPE",
		"transactional",
		"TOTAL",
		"RELATION TYPE",
		"one-to-many",
		"many-to-one",
		"many-to-many",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q\n%s", want, out)
		}
	}
}

func TestWriteMultiFile(t *testing.T) {
	dir := t.TempDir()
	set := sampleSet()
	set.Documents = append(set.Documents, &model.Document{Path: "empty.ts"})

	if err := WriteMultiFile(dir, set); err != nil {
		t.Fatalf("WriteMultiFile() error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "schema.md"))
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if !strings.Contains(string(content), "# schema.ts") {
		t.Errorf("output missing document heading:\n%s", content)
	}
	if !strings.Contains(string(content), "## users") {
		t.Errorf("output missing entity section:\n%s", content)
	}

	// Documents without entities produce no file.
	if _, err := os.Stat(filepath.Join(dir, "empty.md")); !os.IsNotExist(err) {
		t.Errorf("empty document should not produce a file, stat err = %v", err)
	}
}
