package db_test

import (
	"context"
	"path/filepath"
	"testing"

	migrations "github.com/Dorian509/BackEnd/db"
	dbpkg "github.com/Dorian509/BackEnd/internal/db"
)

func TestMigrate_AppliesAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer d.Close()

	if err := dbpkg.Migrate(ctx, d, migrations.Migrations); err != nil {
		t.Fatalf("first migrate failed: %v", err)
	}

	// tables exist afterwards
	for _, table := range []string{"user_profiles", "intake_events", "schema_migrations"} {
		var name string
		row := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			t.Fatalf("expected table %s to exist: %v", table, err)
		}
	}

	// second run is a no-op
	if err := dbpkg.Migrate(ctx, d, migrations.Migrations); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	var count int
	row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("scan migration count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 recorded migration, got %d", count)
	}
}

func TestNew_BadDSN(t *testing.T) {
	if _, err := dbpkg.New(context.Background(), "file:/nonexistent-dir/sub/db.sqlite?mode=ro"); err == nil {
		t.Fatalf("expected error for unreachable dsn")
	}
}
