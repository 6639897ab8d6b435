// Command backup creates and restores snapshots of the creatorhub store.
//
// A database backup is a plain copy of the SQLite file. A full backup is a
// zip archive holding the database plus CSV snapshots of both tables, so the
// data stays readable even without the application.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"creatorhub-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}
	logger.Init(getEnv("APP_ENV", "development"), getEnv("LOG_LEVEL", "info"))

	var (
		backupType = flag.String("type", "full", "backup type: full or database")
		outputDir  = flag.String("dir", getEnv("BACKUP_DIR", "backups"), "backup output directory")
		dbPath     = flag.String("db", getEnv("DATABASE_PATH", "database/data.db"), "path to the SQLite database")
		restore    = flag.String("restore", "", "restore the database from this backup file")
		keep       = flag.Int("keep", 0, "prune old backups, keeping the newest N (0 = keep all)")
	)
	flag.Parse()

	if *restore != "" {
		if err := restoreBackup(*restore, *dbPath, *outputDir); err != nil {
			log.Fatal().Err(err).Msg("Restore failed")
		}
		log.Info().Str("from", *restore).Msg("Database restored")
		return
	}

	file, err := createBackup(*backupType, *dbPath, *outputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Backup failed")
	}
	log.Info().Str("file", file).Msg("Backup created")

	if *keep > 0 {
		removed, err := pruneBackups(*outputDir, *keep)
		if err != nil {
			log.Fatal().Err(err).Msg("Prune failed")
		}
		log.Info().Int("removed", removed).Int("kept", *keep).Msg("Old backups pruned")
	}
}

func backupName(backupType string) string {
	return fmt.Sprintf("creatorhub_backup_%s_%s", backupType, time.Now().Format("20060102_150405"))
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
