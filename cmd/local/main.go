package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"argilla-trainer/cmd"
	"argilla-trainer/internal/api"
	"argilla-trainer/internal/config"
	"argilla-trainer/internal/core"
	"argilla-trainer/internal/database"
	"argilla-trainer/internal/messaging"
	"argilla-trainer/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"
)

func createDatabase(root string) *gorm.DB {
	return cmd.CreateDatabase(config.DatabaseConfig{
		Dialect: database.DialectSqlite,
		DSN:     filepath.Join(root, "db", "trainer.db"),
	})
}

// createQueue requeues the jobs that were not finished when the process last
// stopped.
func createQueue(db *gorm.DB) *messaging.InMemoryQueue {
	var jobs []database.TrainingJob
	if err := db.Where("status IN ?", []string{database.JobQueued, database.JobRunning}).Order("creation_time").Find(&jobs).Error; err != nil {
		log.Fatalf("Failed to fetch training jobs from database: %v", err)
	}

	queue := messaging.NewInMemoryQueue()
	for _, job := range jobs {
		if err := queue.PublishTrainTask(context.Background(), messaging.TrainTaskPayload{JobId: job.Id}); err != nil {
			log.Fatalf("Failed to publish training task: %v", err)
		}
	}

	if len(jobs) > 0 {
		slog.Info("requeued unfinished training jobs", "count", len(jobs))
	}

	return queue
}

func createServer(db *gorm.DB, queue messaging.Publisher, port int) *http.Server {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	apiHandler := api.NewTrainerService(db, queue)

	r.Route("/api/v1", func(r chi.Router) {
		apiHandler.AddRoutes(r)
	})

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}
}

func main() {
	cmd.LoadEnvFile()

	cfg, err := config.Parse[config.LocalConfig]()
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := os.MkdirAll(cfg.Root, os.ModePerm); err != nil {
		log.Fatalf("error creating root directory: %v", err)
	}
	f, err := os.OpenFile(filepath.Join(cfg.Root, "trainer.log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer f.Close()
	log.SetOutput(io.MultiWriter(f, os.Stderr))

	slog.Info("starting trainer", "root", cfg.Root, "port", cfg.Port)

	db := createDatabase(cfg.Root)

	store, err := storage.NewLocalObjectStore(filepath.Join(cfg.Root, "storage"))
	if err != nil {
		log.Fatalf("Failed to create storage: %v", err)
	}
	if err := store.CreateBucket(context.Background(), cfg.ModelBucket); err != nil {
		log.Fatalf("Failed to create model bucket: %v", err)
	}

	workDir := filepath.Join(cfg.Root, "work")
	if err := os.MkdirAll(workDir, os.ModePerm); err != nil {
		log.Fatalf("error creating work directory: %v", err)
	}

	queue := createQueue(db)

	worker := core.NewTaskProcessor(db, store, queue, cmd.AdapterLoaders(cfg.Python), cfg.ModelBucket, workDir)

	server := createServer(db, queue, cfg.Port)

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(context.Background())
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}

		slog.Info("shutting down worker")
		worker.Stop()
	}()

	slog.Info("server started", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %d: %v\n", cfg.Port, err)
	}

	<-workerDone
	slog.Info("server stopped")
}
