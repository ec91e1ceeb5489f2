package core

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/database"
	"argilla-trainer/internal/messaging"
	"argilla-trainer/internal/records"
	"argilla-trainer/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeTask struct {
	queue   string
	payload []byte
	outcome string
}

func (t *fakeTask) Type() string    { return t.queue }
func (t *fakeTask) Payload() []byte { return t.payload }
func (t *fakeTask) Ack() error      { t.outcome = "ack"; return nil }
func (t *fakeTask) Nack() error     { t.outcome = "nack"; return nil }
func (t *fakeTask) Reject() error   { t.outcome = "reject"; return nil }

// fileAdapter writes a model file on Train like a real framework would.
type fileAdapter struct {
	*mockAdapter
}

func (a *fileAdapter) Train(outputDir string) error {
	if err := a.mockAdapter.Train(outputDir); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, "model.bin"), []byte("weights"), 0o644)
}

func createDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.GetMigrator(db).Migrate())
	return db
}

func seedDataset(t *testing.T, db *gorm.DB, task records.TaskType, recs []records.Record) {
	ctx := context.Background()
	ds, err := database.CreateDataset(ctx, db, "ws", "reviews", task)
	require.NoError(t, err)
	_, err = database.CreateRecordsBulk(ctx, db, ds, recs)
	require.NoError(t, err)
}

func createJob(t *testing.T, db *gorm.DB, framework string, overrides map[string]any) *database.TrainingJob {
	job := &database.TrainingJob{
		Id:          uuid.New(),
		DatasetName: "reviews",
		Workspace:   "ws",
		Framework:   framework,
		Status:      database.JobQueued,
	}
	if overrides != nil {
		data, err := json.Marshal(overrides)
		require.NoError(t, err)
		job.ConfigOverrides = datatypes.JSON(data)
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func trainTask(t *testing.T, jobId uuid.UUID) *fakeTask {
	payload, err := json.Marshal(messaging.TrainTaskPayload{JobId: jobId})
	require.NoError(t, err)
	return &fakeTask{queue: messaging.TrainingQueue, payload: payload}
}

func setupProcessor(t *testing.T, db *gorm.DB, loaders map[records.Framework]types.AdapterLoader) (*TaskProcessor, string) {
	storeDir := t.TempDir()
	store, err := storage.NewLocalObjectStore(storeDir)
	require.NoError(t, err)

	queue := messaging.NewInMemoryQueue()
	t.Cleanup(queue.Close)

	return NewTaskProcessor(db, store, queue, loaders, "models", t.TempDir()), storeDir
}

func fileLoaders(adapters map[records.Framework]*mockAdapter) map[records.Framework]types.AdapterLoader {
	out := map[records.Framework]types.AdapterLoader{}
	for _, fw := range records.Frameworks() {
		out[fw] = func(cfg types.AdapterConfig) (types.Adapter, error) {
			a := &mockAdapter{cfg: cfg}
			adapters[fw] = a
			return &fileAdapter{mockAdapter: a}, nil
		}
	}
	return out
}

func TestProcessTrainingTask(t *testing.T) {
	db := createDB(t)
	seedDataset(t, db, records.TextClassification, textDataset(false).Records())

	adapters := map[records.Framework]*mockAdapter{}
	proc, storeDir := setupProcessor(t, db, fileLoaders(adapters))

	job := createJob(t, db, "setfit", map[string]any{"num_epochs": 2.0})
	task := trainTask(t, job.Id)

	proc.ProcessTask(context.Background(), task)
	assert.Equal(t, "ack", task.outcome)

	saved, err := database.GetTrainingJob(context.Background(), db, job.Id)
	require.NoError(t, err)
	assert.Equal(t, database.JobCompleted, saved.Status)
	assert.Empty(t, saved.Error)
	assert.Equal(t, job.Id.String(), saved.ModelPrefix)
	assert.True(t, saved.StartTime.Valid)
	assert.True(t, saved.CompletionTime.Valid)

	adapter := adapters[records.SetFit]
	require.NotNil(t, adapter)
	assert.Equal(t, []map[string]any{{"num_epochs": 2.0}}, adapter.updates)
	require.Len(t, adapter.trainDirs, 1)
	assert.True(t, adapter.released)

	// The temporary training directory is removed after upload.
	_, err = os.Stat(adapter.trainDirs[0])
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(filepath.Join(storeDir, "models", job.Id.String(), "model.bin"))
	require.NoError(t, err)
	assert.Equal(t, "weights", string(data))
}

func TestProcessTrainingTask_FrameworkMismatch(t *testing.T) {
	db := createDB(t)
	seedDataset(t, db, records.TokenClassification, tokenDataset().Records())

	adapters := map[records.Framework]*mockAdapter{}
	proc, _ := setupProcessor(t, db, fileLoaders(adapters))

	job := createJob(t, db, "setfit", nil)
	task := trainTask(t, job.Id)

	proc.ProcessTask(context.Background(), task)
	assert.Equal(t, "reject", task.outcome)

	saved, err := database.GetTrainingJob(context.Background(), db, job.Id)
	require.NoError(t, err)
	assert.Equal(t, database.JobFailed, saved.Status)
	assert.Contains(t, saved.Error, "setfit")
	assert.Empty(t, saved.ModelPrefix)
	assert.Empty(t, adapters)
}

func TestProcessTrainingTask_TrainError(t *testing.T) {
	db := createDB(t)
	seedDataset(t, db, records.TextClassification, textDataset(false).Records())

	loaders := map[records.Framework]types.AdapterLoader{
		records.Transformers: func(cfg types.AdapterConfig) (types.Adapter, error) {
			return &mockAdapter{cfg: cfg, err: errors.New("cuda out of memory")}, nil
		},
	}
	proc, storeDir := setupProcessor(t, db, loaders)

	job := createJob(t, db, "transformers", nil)
	task := trainTask(t, job.Id)

	proc.ProcessTask(context.Background(), task)
	assert.Equal(t, "reject", task.outcome)

	saved, err := database.GetTrainingJob(context.Background(), db, job.Id)
	require.NoError(t, err)
	assert.Equal(t, database.JobFailed, saved.Status)
	assert.Contains(t, saved.Error, "cuda out of memory")

	_, err = os.Stat(filepath.Join(storeDir, "models", job.Id.String()))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessTrainingTask_UnknownDataset(t *testing.T) {
	db := createDB(t)
	proc, _ := setupProcessor(t, db, fileLoaders(map[records.Framework]*mockAdapter{}))

	job := createJob(t, db, "transformers", nil)
	task := trainTask(t, job.Id)

	proc.ProcessTask(context.Background(), task)
	assert.Equal(t, "reject", task.outcome)

	saved, err := database.GetTrainingJob(context.Background(), db, job.Id)
	require.NoError(t, err)
	assert.Equal(t, database.JobFailed, saved.Status)
	assert.Contains(t, saved.Error, "not found")
}

func TestProcessTask_Malformed(t *testing.T) {
	db := createDB(t)
	proc, _ := setupProcessor(t, db, nil)

	task := &fakeTask{queue: messaging.TrainingQueue, payload: []byte("{not json")}
	proc.ProcessTask(context.Background(), task)
	assert.Equal(t, "reject", task.outcome)

	task = &fakeTask{queue: "other_queue", payload: []byte("{}")}
	proc.ProcessTask(context.Background(), task)
	assert.Equal(t, "reject", task.outcome)

	// A job id that does not exist.
	task = trainTask(t, uuid.New())
	proc.ProcessTask(context.Background(), task)
	assert.Equal(t, "reject", task.outcome)
}

func TestTaskProcessorStart(t *testing.T) {
	db := createDB(t)
	seedDataset(t, db, records.TextClassification, textDataset(false).Records())

	storeDir := t.TempDir()
	store, err := storage.NewLocalObjectStore(storeDir)
	require.NoError(t, err)

	queue := messaging.NewInMemoryQueue()
	results := queue.WithResults(2)

	proc := NewTaskProcessor(db, store, queue, fileLoaders(map[records.Framework]*mockAdapter{}), "models", t.TempDir())

	job := createJob(t, db, "transformers", nil)
	require.NoError(t, queue.PublishTrainTask(context.Background(), messaging.TrainTaskPayload{JobId: job.Id}))

	done := make(chan struct{})
	go func() {
		proc.Start(context.Background())
		close(done)
	}()

	assert.Equal(t, "ack", <-results)
	proc.Stop()
	<-done

	saved, err := database.GetTrainingJob(context.Background(), db, job.Id)
	require.NoError(t, err)
	assert.Equal(t, database.JobCompleted, saved.Status)
}
