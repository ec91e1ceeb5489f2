package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/database"
	"argilla-trainer/internal/loader"
	"argilla-trainer/internal/messaging"
	"argilla-trainer/internal/records"
	"argilla-trainer/internal/storage"

	"gorm.io/gorm"
)

type TaskProcessor struct {
	db       *gorm.DB
	storage  storage.ObjectStore
	receiver messaging.Receiver

	loaders     map[records.Framework]types.AdapterLoader
	modelBucket string
	workDir     string
}

func NewTaskProcessor(db *gorm.DB, storage storage.ObjectStore, receiver messaging.Receiver, loaders map[records.Framework]types.AdapterLoader, modelBucket string, workDir string) *TaskProcessor {
	return &TaskProcessor{
		db:          db,
		storage:     storage,
		receiver:    receiver,
		loaders:     loaders,
		modelBucket: modelBucket,
		workDir:     workDir,
	}
}

// Start processes tasks one at a time until the receiver is closed or ctx is
// done. A task that is already running is not interrupted by ctx.
func (proc *TaskProcessor) Start(ctx context.Context) {
	slog.Info("starting task processor")

	for {
		select {
		case task, ok := <-proc.receiver.Tasks():
			if !ok {
				return
			}
			proc.ProcessTask(context.WithoutCancel(ctx), task)
		case <-ctx.Done():
			return
		}
	}
}

func (proc *TaskProcessor) Stop() {
	slog.Info("stopping task processor")

	proc.receiver.Close()
}

func (proc *TaskProcessor) ProcessTask(ctx context.Context, task messaging.Task) {
	if task.Type() != messaging.TrainingQueue {
		slog.Error("received unknown task type", "queue", task.Type())
		malformedTrainTaskTotal.Inc()
		if err := task.Reject(); err != nil {
			slog.Error("error rejecting message from queue", "error", err)
		}
		return
	}

	var payload messaging.TrainTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		slog.Error("error unmarshalling training task", "error", err)
		malformedTrainTaskTotal.Inc()
		if err := task.Reject(); err != nil { // Discard malformed message
			slog.Error("error rejecting message from queue", "error", err)
		}
		return
	}

	if err := proc.processTrainingTask(ctx, payload); err != nil {
		slog.Error("error processing task", "queue", task.Type(), "job_id", payload.JobId, "error", err)
		if err := task.Reject(); err != nil {
			slog.Error("error rejecting message from queue", "error", err)
		}
		return
	}

	slog.Info("successfully processed task", "queue", task.Type(), "job_id", payload.JobId)
	if err := task.Ack(); err != nil {
		slog.Error("error acknowledging message from queue", "error", err)
	}
}

func (proc *TaskProcessor) processTrainingTask(ctx context.Context, payload messaging.TrainTaskPayload) error {
	jobId := payload.JobId

	job, err := database.GetTrainingJob(ctx, proc.db, jobId)
	if err != nil {
		return fmt.Errorf("error getting training job: %w", err)
	}

	if job.Status == database.JobCompleted {
		slog.Info("training job already completed, skipping", "job_id", jobId)
		return nil
	}

	if err := database.UpdateTrainingJobStatus(ctx, proc.db, jobId, database.JobRunning); err != nil {
		return err
	}

	trainingJobsInProgress.Inc()
	start := time.Now()

	prefix, err := proc.runTrainingJob(ctx, job)

	trainingJobsInProgress.Dec()
	trainingJobDuration.WithLabelValues(job.Framework).Observe(time.Since(start).Seconds())

	if err != nil {
		trainingJobsTotal.WithLabelValues(job.Framework, database.JobFailed).Inc()
		database.SaveTrainingJobError(ctx, proc.db, jobId, err.Error())
		if statusErr := database.UpdateTrainingJobStatus(ctx, proc.db, jobId, database.JobFailed); statusErr != nil {
			slog.Error("error marking training job as failed", "job_id", jobId, "error", statusErr)
		}
		return err
	}

	if err := database.SetTrainingJobModelPrefix(ctx, proc.db, jobId, prefix); err != nil {
		return err
	}

	trainingJobsTotal.WithLabelValues(job.Framework, database.JobCompleted).Inc()

	return database.UpdateTrainingJobStatus(ctx, proc.db, jobId, database.JobCompleted)
}

func jobOptions(job *database.TrainingJob) Options {
	opts := Options{
		Name:        job.DatasetName,
		Workspace:   job.Workspace,
		Framework:   job.Framework,
		Lang:        job.Lang,
		Model:       job.Model,
		LoadOptions: loader.LoadOptions{Workspace: job.Workspace, Query: job.Query},
	}
	if job.TrainSize.Valid {
		trainSize := job.TrainSize.Float64
		opts.TrainSize = &trainSize
	}
	if job.Seed.Valid {
		seed := job.Seed.Int64
		opts.Seed = &seed
	}
	return opts
}

func jobOverrides(job *database.TrainingJob) (map[string]any, error) {
	if len(job.ConfigOverrides) == 0 || string(job.ConfigOverrides) == "null" {
		return nil, nil
	}

	var overrides map[string]any
	if err := json.Unmarshal(job.ConfigOverrides, &overrides); err != nil {
		return nil, fmt.Errorf("error parsing config overrides: %w", err)
	}
	return overrides, nil
}

// runTrainingJob trains the model described by the job and returns the object
// store prefix it was uploaded to.
func (proc *TaskProcessor) runTrainingJob(ctx context.Context, job *database.TrainingJob) (string, error) {
	slog.Info("processing training job", "job_id", job.Id, "dataset", job.DatasetName, "framework", job.Framework)

	overrides, err := jobOverrides(job)
	if err != nil {
		return "", err
	}

	trainer, err := NewTrainer(ctx, loader.NewDBLoader(proc.db.WithContext(ctx)), proc.loaders, jobOptions(job))
	if err != nil {
		return "", err
	}
	defer trainer.Release()

	if len(overrides) > 0 {
		if err := trainer.UpdateConfig(overrides); err != nil {
			return "", fmt.Errorf("error applying config overrides: %w", err)
		}
	}

	outputDir, err := os.MkdirTemp(proc.workDir, "training-"+job.Id.String()+"-")
	if err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(outputDir); err != nil {
			slog.Error("error removing training output directory", "dir", outputDir, "error", err)
		}
	}()

	if err := trainer.Train(outputDir); err != nil {
		return "", fmt.Errorf("error training model: %w", err)
	}

	prefix := job.Id.String()
	if err := proc.storage.UploadDir(ctx, proc.modelBucket, prefix, outputDir); err != nil {
		return "", fmt.Errorf("error uploading trained model: %w", err)
	}

	slog.Info("training job finished", "job_id", job.Id, "bucket", proc.modelBucket, "prefix", prefix)

	return prefix, nil
}
