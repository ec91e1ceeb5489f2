package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"argilla-trainer/internal/database"
	"argilla-trainer/internal/loader"
	"argilla-trainer/internal/messaging"
	"argilla-trainer/internal/records"
	"argilla-trainer/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TrainerService struct {
	db        *gorm.DB
	publisher messaging.Publisher
}

func NewTrainerService(db *gorm.DB, publisher messaging.Publisher) *TrainerService {
	return &TrainerService{db: db, publisher: publisher}
}

func (s *TrainerService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Route("/datasets", func(r chi.Router) {
		r.Post("/", RestHandler(s.CreateDataset))
		r.Get("/{name}/records", RestHandler(s.GetRecords))
		r.Post("/{name}/records/bulk", RestHandler(s.CreateRecords))
		r.Put("/{name}/records/bulk", RestHandler(s.UpsertRecords))
	})
	r.Route("/trainings", func(r chi.Router) {
		r.Post("/", RestHandler(s.SubmitTrainingJob))
		r.Get("/{job_id}", RestHandler(s.GetTrainingJob))
	})
}

func convertDataset(ds *database.Dataset) api.Dataset {
	return api.Dataset{
		Id:           ds.Id,
		Name:         ds.Name,
		Workspace:    ds.Workspace,
		Task:         ds.Task,
		CreationTime: ds.CreationTime,
	}
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func convertTrainingJob(job *database.TrainingJob) api.TrainingJob {
	return api.TrainingJob{
		Id:             job.Id,
		DatasetName:    job.DatasetName,
		Workspace:      job.Workspace,
		Framework:      job.Framework,
		Model:          job.Model,
		Status:         job.Status,
		Error:          job.Error,
		ModelPrefix:    job.ModelPrefix,
		CreationTime:   job.CreationTime,
		StartTime:      nullTime(job.StartTime),
		CompletionTime: nullTime(job.CompletionTime),
	}
}

func (s *TrainerService) CreateDataset(r *http.Request) (any, error) {
	req, err := ParseRequest[api.CreateDatasetRequest](r)
	if err != nil {
		return nil, err
	}

	if err := validateName("dataset", req.Name); err != nil {
		return nil, err
	}

	task, err := records.ParseTaskType(req.Task)
	if err != nil {
		return nil, CodedError(http.StatusBadRequest, err)
	}

	ds, err := database.CreateDataset(r.Context(), s.db, req.Workspace, req.Name, task)
	if err != nil {
		if errors.Is(err, database.ErrDatasetExists) {
			return nil, CodedErrorf(http.StatusConflict, "dataset '%s' already exists in workspace '%s'", req.Name, req.Workspace)
		}
		slog.Error("error creating dataset", "name", req.Name, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error creating dataset")
	}

	slog.Info("created dataset", "dataset_id", ds.Id, "name", ds.Name, "workspace", ds.Workspace, "task", ds.Task)

	return convertDataset(ds), nil
}

func (s *TrainerService) getDataset(r *http.Request, workspace string) (*database.Dataset, error) {
	name := chi.URLParam(r, "name")

	ds, err := database.GetDataset(r.Context(), s.db, workspace, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "dataset '%s' not found in workspace '%s'", name, workspace)
		}
		slog.Error("error getting dataset", "name", name, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving dataset")
	}
	return ds, nil
}

func (s *TrainerService) GetRecords(r *http.Request) (any, error) {
	opts, err := ParseRequestQueryParams[loader.LoadOptions](r)
	if err != nil {
		return nil, err
	}

	name := chi.URLParam(r, "name")

	ds, err := loader.NewDBLoader(s.db).Load(r.Context(), name, opts)
	if err != nil {
		switch {
		case errors.Is(err, loader.ErrDatasetNotFound):
			return nil, CodedError(http.StatusNotFound, err)
		case errors.Is(err, loader.ErrInvalidQuery):
			return nil, CodedError(http.StatusBadRequest, err)
		}
		slog.Error("error loading records", "name", name, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error loading records")
	}

	data, err := json.Marshal(ds.Records())
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "error serializing records: %v", err)
	}

	return api.RecordsResponse{Task: string(ds.Task()), Records: data}, nil
}

type bulkFunc func(r *http.Request, dataset *database.Dataset, items []records.Record) (*database.BulkResult, error)

func (s *TrainerService) bulkRecords(r *http.Request, op bulkFunc) (any, error) {
	req, err := ParseRequest[api.BulkRecordsRequest](r)
	if err != nil {
		return nil, err
	}

	ds, err := s.getDataset(r, req.Workspace)
	if err != nil {
		return nil, err
	}

	items, err := records.DecodeRecords(records.TaskType(ds.Task), req.Records)
	if err != nil {
		return nil, CodedError(http.StatusBadRequest, err)
	}
	if len(items) == 0 {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "no records provided")
	}

	res, err := op(r, ds, items)
	if err != nil {
		if errors.Is(err, database.ErrInvalidRecord) {
			return nil, CodedError(http.StatusUnprocessableEntity, err)
		}
		slog.Error("error writing records", "dataset_id", ds.Id, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error writing records")
	}

	data, err := json.Marshal(res.Records)
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "error serializing records: %v", err)
	}

	updated := res.Updated
	if updated == nil {
		updated = []uuid.UUID{}
	}

	return api.BulkRecordsResponse{Processed: len(res.Records), Updated: updated, Records: data}, nil
}

func (s *TrainerService) CreateRecords(r *http.Request) (any, error) {
	return s.bulkRecords(r, func(r *http.Request, dataset *database.Dataset, items []records.Record) (*database.BulkResult, error) {
		return database.CreateRecordsBulk(r.Context(), s.db, dataset, items)
	})
}

func (s *TrainerService) UpsertRecords(r *http.Request) (any, error) {
	return s.bulkRecords(r, func(r *http.Request, dataset *database.Dataset, items []records.Record) (*database.BulkResult, error) {
		return database.UpsertRecordsBulk(r.Context(), s.db, dataset, items)
	})
}

func (s *TrainerService) SubmitTrainingJob(r *http.Request) (any, error) {
	req, err := ParseRequest[api.CreateTrainingRequest](r)
	if err != nil {
		return nil, err
	}

	if err := validateName("dataset", req.DatasetName); err != nil {
		return nil, err
	}

	framework, err := records.ParseFramework(req.Framework)
	if err != nil {
		return nil, CodedError(http.StatusBadRequest, err)
	}

	if req.TrainSize != nil && (*req.TrainSize <= 0 || *req.TrainSize > 1) {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "train size must be in (0, 1], got %v", *req.TrainSize)
	}

	if req.Query != "" {
		if _, err := loader.ParseQuery(req.Query); err != nil {
			return nil, CodedError(http.StatusBadRequest, err)
		}
	}

	ctx := r.Context()

	if _, err := database.GetDataset(ctx, s.db, req.Workspace, req.DatasetName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "dataset '%s' not found in workspace '%s'", req.DatasetName, req.Workspace)
		}
		slog.Error("error getting dataset", "name", req.DatasetName, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving dataset")
	}

	job := database.TrainingJob{
		Id:           uuid.New(),
		DatasetName:  req.DatasetName,
		Workspace:    req.Workspace,
		Framework:    string(framework),
		Model:        req.Model,
		Lang:         req.Lang,
		Query:        req.Query,
		Status:       database.JobQueued,
		CreationTime: time.Now().UTC(),
	}
	if req.TrainSize != nil {
		job.TrainSize = sql.NullFloat64{Float64: *req.TrainSize, Valid: true}
	}
	if req.Seed != nil {
		job.Seed = sql.NullInt64{Int64: *req.Seed, Valid: true}
	}
	if len(req.Config) > 0 {
		overrides, err := json.Marshal(req.Config)
		if err != nil {
			return nil, CodedErrorf(http.StatusBadRequest, "invalid config overrides: %v", err)
		}
		job.ConfigOverrides = datatypes.JSON(overrides)
	}

	if err := s.db.WithContext(ctx).Create(&job).Error; err != nil {
		slog.Error("error creating training job", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to create training job")
	}

	if err := s.publisher.PublishTrainTask(ctx, messaging.TrainTaskPayload{JobId: job.Id}); err != nil {
		slog.Error("error publishing training task", "job_id", job.Id, "error", err)
		database.SaveTrainingJobError(ctx, s.db, job.Id, "failed to queue training task")
		if err := database.UpdateTrainingJobStatus(ctx, s.db, job.Id, database.JobFailed); err != nil {
			slog.Error("error marking training job as failed", "job_id", job.Id, "error", err)
		}
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to queue training task")
	}

	slog.Info("submitted training job", "job_id", job.Id, "dataset", job.DatasetName, "framework", job.Framework)

	return api.CreateTrainingResponse{JobId: job.Id}, nil
}

func (s *TrainerService) GetTrainingJob(r *http.Request) (any, error) {
	jobId, err := URLParamUUID(r, "job_id")
	if err != nil {
		return nil, err
	}

	job, err := database.GetTrainingJob(r.Context(), s.db, jobId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "training job not found")
		}
		slog.Error("error getting training job", "job_id", jobId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving training job")
	}

	return convertTrainingJob(job), nil
}
