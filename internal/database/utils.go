package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"argilla-trainer/internal/records"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDatasetExists = errors.New("dataset already exists")

func UpdateTrainingJobStatus(ctx context.Context, txn *gorm.DB, jobId uuid.UUID, status string) error {
	now := time.Now().UTC()
	updates := map[string]any{"status": status}
	switch status {
	case JobRunning:
		updates["start_time"] = sql.NullTime{Time: now, Valid: true}
	case JobCompleted, JobFailed:
		updates["completion_time"] = sql.NullTime{Time: now, Valid: true}
	}

	if err := txn.WithContext(ctx).Model(&TrainingJob{Id: jobId}).Updates(updates).Error; err != nil {
		slog.Error("error updating training job status", "job_id", jobId, "status", status, "error", err)
		return err
	}
	return nil
}

func SaveTrainingJobError(ctx context.Context, txn *gorm.DB, jobId uuid.UUID, errorMessage string) {
	if err := txn.WithContext(ctx).Model(&TrainingJob{Id: jobId}).Update("error", errorMessage).Error; err != nil {
		slog.Error("error saving training job error", "job_id", jobId, "error", err)
	}
}

func SetTrainingJobModelPrefix(ctx context.Context, txn *gorm.DB, jobId uuid.UUID, prefix string) error {
	if err := txn.WithContext(ctx).Model(&TrainingJob{Id: jobId}).Update("model_prefix", prefix).Error; err != nil {
		slog.Error("error saving training job model prefix", "job_id", jobId, "error", err)
		return err
	}
	return nil
}

func GetTrainingJob(ctx context.Context, txn *gorm.DB, jobId uuid.UUID) (*TrainingJob, error) {
	var job TrainingJob
	if err := txn.WithContext(ctx).First(&job, "id = ?", jobId).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func GetDataset(ctx context.Context, txn *gorm.DB, workspace, name string) (*Dataset, error) {
	var dataset Dataset
	if err := txn.WithContext(ctx).Where("workspace = ? AND name = ?", workspace, name).First(&dataset).Error; err != nil {
		return nil, err
	}
	return &dataset, nil
}

func CreateDataset(ctx context.Context, txn *gorm.DB, workspace, name string, task records.TaskType) (*Dataset, error) {
	if _, err := records.ParseTaskType(string(task)); err != nil {
		return nil, err
	}

	dataset := Dataset{
		Id:           uuid.New(),
		Name:         name,
		Workspace:    workspace,
		Task:         string(task),
		CreationTime: time.Now().UTC(),
	}

	err := txn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Dataset{}).Where("workspace = ? AND name = ?", workspace, name).Count(&count).Error; err != nil {
			return fmt.Errorf("error checking for existing dataset: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: '%s' in workspace '%s'", ErrDatasetExists, name, workspace)
		}
		return tx.Create(&dataset).Error
	})
	if err != nil {
		return nil, err
	}
	return &dataset, nil
}

// ListRecords returns the records of a dataset in insertion order. A limit of 0
// returns every record.
func ListRecords(ctx context.Context, txn *gorm.DB, dataset *Dataset, limit int) ([]records.Record, error) {
	query := txn.WithContext(ctx).Where("dataset_id = ?", dataset.Id).Order("position ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []Record
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing records of dataset %s: %w", dataset.Name, err)
	}

	out := make([]records.Record, 0, len(rows))
	for i := range rows {
		rec, err := ToRecord(records.TaskType(dataset.Task), &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
