package main

import (
	"context"
	"log"

	"github.com/parkatlas/park-media-go/internal/config"
	"github.com/parkatlas/park-media-go/internal/db"
	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/repository/mariadb"
	"github.com/parkatlas/park-media-go/internal/task"
	mediaSvc "github.com/parkatlas/park-media-go/internal/usecase/media"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("DB close error: %v", err)
		}
	}()

	dispatcher := initDispatcher(cfg)
	repo := mariadb.NewMediaRepository(database.DB)

	sweeper := mediaSvc.NewBacklogSweeper(repo, dispatcher)
	if err := sweeper.SweepBacklog(context.Background()); err != nil {
		log.Fatalf("❌  Backlog sweep failed: %v", err)
	}
	log.Println("✅  Backlog sweep completed")
}

func initDb(cfg *config.Settings) *db.Database {
	log.Println("initialising database...")
	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		log.Fatalf("❌  Failed to connect to db: %v", err)
	}
	return database
}

// initDispatcher returns the real dispatcher when Redis is configured.
// Without Redis the sweep still runs and logs every stale asset it finds,
// but enqueues nothing, which makes a dry run.
func initDispatcher(cfg *config.Settings) port.TaskDispatcher {
	if cfg.RedisAddr == "" {
		log.Println("⚠️  Redis not configured, running as a dry run: stale medias are listed but no task is enqueued")
		return task.NewNoopDispatcher()
	}
	return task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
}
