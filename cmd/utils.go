package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"argilla-trainer/internal/config"
	"argilla-trainer/internal/core"
	"argilla-trainer/internal/core/python"
	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/database"
	"argilla-trainer/internal/records"
	"argilla-trainer/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func LoadEnvFile() {
	var configPath string

	flag.StringVar(&configPath, "env", "", "path to load env from")
	flag.Parse()

	if configPath == "" {
		log.Printf("no env file specified, using os.Environ only")
		return
	}

	log.Printf("loading env from file %s", configPath)
	err := godotenv.Load(configPath)
	if err != nil {
		log.Fatalf("error loading .env file '%s': %v", configPath, err)
	}
}

func CreateDatabase(cfg config.DatabaseConfig) *gorm.DB {
	db, err := database.NewDatabase(cfg.Dialect, cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func CreateObjectStore(ctx context.Context, cfg config.StorageConfig) (storage.ObjectStore, error) {
	var (
		store storage.ObjectStore
		err   error
	)
	switch cfg.Type {
	case "local":
		store, err = storage.NewLocalObjectStore(cfg.LocalDir)
	case "s3":
		store, err = storage.NewS3ObjectStore(storage.S3ClientConfig{
			Endpoint:        cfg.S3.Endpoint,
			Region:          cfg.S3.Region,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
	default:
		return nil, fmt.Errorf("invalid storage type '%s', expected 'local' or 's3'", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := store.CreateBucket(ctx, cfg.ModelBucket); err != nil {
		return nil, err
	}

	return store, nil
}

func AdapterLoaders(cfg config.PythonConfig) map[records.Framework]types.AdapterLoader {
	launcher := python.NewLauncher(cfg.Executable, cfg.PluginScript, python.HardwareOptions{
		EnableMPSFallback: cfg.EnableMPSFallback,
		NumThreads:        cfg.NumThreads,
	})
	slog.Info("framework adapters run out of process", "python", cfg.Executable, "plugin", cfg.PluginScript)
	return core.NewAdapterLoaders(launcher.Start)
}
