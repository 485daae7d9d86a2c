package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-dosen/absensi-backend-go/migrations"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup untuk menginisialisasi test database
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase membuat koneksi ke test database dan menjalankan migrasi.
// Test dilewati jika TEST_DATABASE_URL tidak di-set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")

	setup := &TestDatabaseSetup{DB: db}
	t.Cleanup(setup.Close)

	ctx := context.Background()
	require.NoError(t, migrations.Apply(ctx, db.Pool))
	require.NoError(t, setup.TruncateAllTables(ctx))
	return setup
}

// TruncateAllTables menghapus semua data dari tabel
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"cuti_dosen",
		"clarifications",
		"attendance",
		"users",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close menutup koneksi database
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
