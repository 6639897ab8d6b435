package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

const migrationTable = "schema_migrations"

// Migration is one versioned schema step. Statements run in order inside a
// single transaction together with the ledger insert for the version.
type Migration struct {
	Version     string
	Description string
	Statements  []string
}

// Migrator applies pending migrations exactly once each, tracked in the
// schema_migrations ledger. Forward-only: there is no rollback path, and a
// version already present in the ledger is never re-examined, even if its
// statements were edited later.
//
// Intended to run once at process startup, before traffic is served. Running
// two processes concurrently against the same uninitialized store is not
// supported.
type Migrator struct {
	db *sql.DB
}

func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

// Run applies every migration whose version is not yet in the ledger, in the
// given order. The first failing step is rolled back and aborts the run; the
// caller must treat that as fatal and not serve traffic.
//
// The whole run happens on one pinned connection with foreign key enforcement
// off. Table-rebuild migrations DROP the old table, and with enforcement on
// that fires an implicit cascade delete through child rows before they are
// copied.
func (m *Migrator) Run(ctx context.Context, migrations []Migration) error {
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire migration connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return fmt.Errorf("disable foreign keys: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), "PRAGMA foreign_keys = ON")
	}()

	if err := m.ensureLedger(ctx, conn); err != nil {
		return fmt.Errorf("ensure migration ledger: %w", err)
	}

	applied, err := m.appliedVersions(ctx, conn)
	if err != nil {
		return fmt.Errorf("read applied migrations: %w", err)
	}

	for _, migration := range migrations {
		if _, ok := applied[migration.Version]; ok {
			continue
		}
		if err := m.apply(ctx, conn, migration); err != nil {
			return fmt.Errorf("apply migration %s: %w", migration.Version, err)
		}
		log.Info().
			Str("version", migration.Version).
			Str("description", migration.Description).
			Msg("Applied migration")
	}

	return nil
}

func (m *Migrator) ensureLedger(ctx context.Context, conn *sql.Conn) error {
	_, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+migrationTable+` (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			version TEXT UNIQUE NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			description TEXT
		)`)
	return err
}

func (m *Migrator) appliedVersions(ctx context.Context, conn *sql.Conn) (map[string]struct{}, error) {
	rows, err := conn.QueryContext(ctx, "SELECT version FROM "+migrationTable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]struct{})
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = struct{}{}
	}
	return applied, rows.Err()
}

// apply runs one migration's statements and its ledger insert as a unit.
// On any failure no partial schema change from this step persists.
func (m *Migrator) apply(ctx context.Context, conn *sql.Conn, migration Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, stmt := range migration.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec statement: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO "+migrationTable+" (version, description) VALUES (?, ?)",
		migration.Version, migration.Description,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration: %w", err)
	}

	return tx.Commit()
}
