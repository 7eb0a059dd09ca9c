package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/drizzledoc/drizzledoc/internal/model"
)

// WriteMultiFile writes one markdown file per source document under dir.
// Files are written concurrently; the extraction itself has already
// finished by the time this runs.
func WriteMultiFile(dir string, set *model.Set) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	var g errgroup.Group
	for _, doc := range set.Documents {
		if len(doc.Entities) == 0 {
			continue
		}
		doc := doc
		g.Go(func() error {
			var buf bytes.Buffer
			f := NewMarkdownFormatter(&buf)
			fmt.Fprintf(&buf, "# %s\n\n", filepath.Base(doc.Path))
			if err := f.FormatDocument(doc); err != nil {
				return err
			}

			out := filepath.Join(dir, docFileName(doc.Path))
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// docFileName derives an output file name from a source path.
func docFileName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".md"
}
