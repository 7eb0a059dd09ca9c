// Package discover selects the schema source files an extraction run will
// parse. It is deliberately outside the engine: the parser only ever sees
// file paths handed to it.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultIncludes matches the conventional drizzle schema file names.
var DefaultIncludes = []string{"*schema*.ts"}

// SchemaFiles walks root and returns the TypeScript files whose base name
// matches any include pattern, in lexical order. node_modules, hidden
// directories, and declaration files are always skipped. When root is a
// regular file it is returned as-is without pattern matching.
func SchemaFiles(root string, includes []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if name == "node_modules" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".ts") || strings.HasSuffix(name, ".d.ts") {
			return nil
		}
		for _, pattern := range includes {
			ok, matchErr := filepath.Match(pattern, name)
			if matchErr != nil {
				return fmt.Errorf("invalid include pattern %q: %w", pattern, matchErr)
			}
			if ok {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
