package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"argilla-trainer/cmd"
	"argilla-trainer/internal/config"
	"argilla-trainer/internal/core"
	"argilla-trainer/internal/messaging"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("Starting Worker Process...")

	cmd.LoadEnvFile()

	cfg, err := config.Parse[config.WorkerConfig]()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := cmd.CreateDatabase(cfg.Database)

	store, err := cmd.CreateObjectStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Worker: Failed to create storage client: %v", err)
	}

	receiver, err := messaging.NewRabbitMQReceiver(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	worker := core.NewTaskProcessor(db, store, receiver, cmd.AdapterLoaders(cfg.Python), cfg.Storage.ModelBucket, cfg.WorkDir)

	metrics := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler: promhttp.Handler(),
	}
	go func() {
		slog.Info("serving metrics", "port", cfg.MetricsPort)
		if err := metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server stopped", "error", err)
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < max(cfg.Concurrency, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Start(ctx)
		}()
	}

	log.Println("Worker started. Waiting for tasks. Press Ctrl+C to exit.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutdown signal received, waiting for workers to finish...")

	cancel()
	worker.Stop()
	wg.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metrics.Shutdown(shutdownCtx); err != nil {
		slog.Error("error stopping metrics server", "error", err)
	}

	log.Println("Worker process stopped.")
}
