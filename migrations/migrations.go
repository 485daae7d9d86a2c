// Package migrations carries the PostgreSQL schema.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
)

//go:embed *.sql
var files embed.FS

// Apply runs every migration in file name order. Scripts are idempotent.
func Apply(ctx context.Context, db database.Querier) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		b, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		// No arguments, so pgx sends the script over the simple protocol
		if _, err := db.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		slog.Info("migration applied", "name", name)
	}
	return nil
}
