package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("export {};\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSchemaFilesDefaultPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "schema.ts"))
	writeFile(t, filepath.Join(dir, "db", "auth-schema.ts"))
	writeFile(t, filepath.Join(dir, "db", "schema.d.ts"))
	writeFile(t, filepath.Join(dir, "index.ts"))
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "schema.ts"))
	writeFile(t, filepath.Join(dir, ".cache", "schema.ts"))

	got, err := SchemaFiles(dir, nil)
	if err != nil {
		t.Fatalf("SchemaFiles() error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "db", "auth-schema.ts"),
		filepath.Join(dir, "schema.ts"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SchemaFiles() mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaFilesCustomIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "users.ts"))
	writeFile(t, filepath.Join(dir, "posts.ts"))
	writeFile(t, filepath.Join(dir, "helpers.ts"))

	got, err := SchemaFiles(dir, []string{"users.ts", "posts.ts"})
	if err != nil {
		t.Fatalf("SchemaFiles() error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "posts.ts"),
		filepath.Join(dir, "users.ts"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SchemaFiles() mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaFilesFileRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anything.ts")
	writeFile(t, path)

	got, err := SchemaFiles(path, nil)
	if err != nil {
		t.Fatalf("SchemaFiles() error: %v", err)
	}
	if len(got) != 1 || got[0] != path {
		t.Errorf("SchemaFiles() = %v, want just %s", got, path)
	}
}

func TestSchemaFilesMissingRoot(t *testing.T) {
	if _, err := SchemaFiles(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("SchemaFiles() expected error for missing root")
	}
}

func TestSchemaFilesBadPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "schema.ts"))

	if _, err := SchemaFiles(dir, []string{"[bad"}); err == nil {
		t.Error("SchemaFiles() expected error for invalid pattern")
	}
}
