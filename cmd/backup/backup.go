package main

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"creatorhub-backend/internal/domains/export/repository"
	"creatorhub-backend/internal/infrastructure/database"
)

// createBackup writes either a raw database copy or a full zip archive and
// returns the path of the file it produced.
func createBackup(backupType, dbPath, outputDir string) (string, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return "", fmt.Errorf("database file not found: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	switch backupType {
	case "database":
		if err := checkpoint(dbPath); err != nil {
			return "", err
		}
		target := filepath.Join(outputDir, backupName(backupType)+".db")
		if err := copyFile(dbPath, target); err != nil {
			return "", err
		}
		return target, nil
	case "full":
		target := filepath.Join(outputDir, backupName(backupType)+".zip")
		if err := writeFullBackup(dbPath, target); err != nil {
			return "", err
		}
		return target, nil
	default:
		return "", fmt.Errorf("unknown backup type %q, expected full or database", backupType)
	}
}

// checkpoint flushes the write-ahead log into the main database file so a
// raw file copy captures every committed row.
func checkpoint(dbPath string) error {
	db, err := database.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.DB.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("failed to checkpoint database: %w", err)
	}
	return nil
}

// writeFullBackup zips the database file together with CSV snapshots of the
// youtubers and videos tables.
func writeFullBackup(dbPath, target string) error {
	db, err := database.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.DB.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("failed to checkpoint database: %w", err)
	}

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	dbEntry, err := zw.Create(filepath.Base(dbPath))
	if err != nil {
		return err
	}
	src, err := os.Open(dbPath)
	if err != nil {
		return err
	}
	_, err = io.Copy(dbEntry, src)
	src.Close()
	if err != nil {
		return fmt.Errorf("failed to archive database: %w", err)
	}

	repo := repository.NewSQLiteRepository(db.DB)
	ctx := context.Background()

	tables := []struct {
		name string
		dump func(context.Context) (*repository.Table, error)
	}{
		{"youtubers.csv", repo.Youtubers},
		{"videos.csv", repo.Videos},
	}
	for _, t := range tables {
		table, err := t.dump(ctx)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", t.name, err)
		}
		entry, err := zw.Create(t.name)
		if err != nil {
			return err
		}
		w := csv.NewWriter(entry)
		if err := w.Write(table.Columns); err != nil {
			return err
		}
		if err := w.WriteAll(table.Rows); err != nil {
			return err
		}
	}

	return zw.Close()
}

// restoreBackup replaces the live database with a backup copy, snapshotting
// the current file first so a bad restore can be undone.
func restoreBackup(backupFile, dbPath, outputDir string) error {
	if _, err := os.Stat(backupFile); err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}
	if !strings.HasSuffix(backupFile, ".db") {
		return fmt.Errorf("restore expects a .db backup, got %s", filepath.Base(backupFile))
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
		snapshot := filepath.Join(outputDir, backupName("prerestore")+".db")
		if err := copyFile(dbPath, snapshot); err != nil {
			return fmt.Errorf("failed to snapshot current database: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return err
	}
	return copyFile(backupFile, dbPath)
}

// pruneBackups deletes backup files beyond the newest keep entries and
// returns how many it removed.
func pruneBackups(outputDir string, keep int) (int, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return 0, err
	}

	var backups []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "creatorhub_backup_") {
			continue
		}
		backups = append(backups, e.Name())
	}

	// Timestamped names sort chronologically, newest last.
	sort.Strings(backups)
	if len(backups) <= keep {
		return 0, nil
	}

	removed := 0
	for _, name := range backups[:len(backups)-keep] {
		if err := os.Remove(filepath.Join(outputDir, name)); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
