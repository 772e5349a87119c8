package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// CreateMigration writes an empty up/down migration pair named after the
// current timestamp so files sort in creation order. Returns the two paths.
func CreateMigration(migrationsDir, name string) (upPath, downPath string, err error) {
	if err := os.MkdirAll(migrationsDir, 0755); err != nil {
		return "", "", fmt.Errorf("create migrations directory: %w", err)
	}

	base := fmt.Sprintf("%s_%s", time.Now().Format("20060102150405"), slugify(name))
	upPath = filepath.Join(migrationsDir, base+".up.sql")
	downPath = filepath.Join(migrationsDir, base+".down.sql")

	header := fmt.Sprintf("-- %s\n\n", name)
	if err := os.WriteFile(upPath, []byte(header), 0644); err != nil {
		return "", "", fmt.Errorf("write up migration: %w", err)
	}
	if err := os.WriteFile(downPath, []byte(header), 0644); err != nil {
		_ = os.Remove(upPath)
		return "", "", fmt.Errorf("write down migration: %w", err)
	}
	return upPath, downPath, nil
}

// ListMigrations returns the base names of the migration pairs in a
// directory, sorted. A missing directory is an empty list.
func ListMigrations(migrationsDir string) ([]string, error) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	migrations := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			migrations = append(migrations, base)
		}
	}
	sort.Strings(migrations)
	return migrations, nil
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
