//go:build integration

package integrationtests

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	backend "argilla-trainer/internal/api"
	"argilla-trainer/internal/core"
	"argilla-trainer/internal/database"
	"argilla-trainer/internal/loader"
	"argilla-trainer/internal/messaging"
	"argilla-trainer/internal/records"
	"argilla-trainer/internal/storage"
	"argilla-trainer/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingWorkflow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	db, err := database.NewDatabase(database.DialectPostgres, setupPostgresContainer(t, ctx))
	require.NoError(t, err)

	storeDir := t.TempDir()
	store, err := storage.NewLocalObjectStore(storeDir)
	require.NoError(t, err)

	queue := messaging.NewInMemoryQueue()
	results := queue.WithResults(10)

	router := chi.NewRouter()
	backend.NewTrainerService(db, queue).AddRoutes(router)

	require.NoError(t, httpRequest(router, "POST", "/datasets", api.CreateDatasetRequest{Name: "reviews", Workspace: "team", Task: "TextClassification"}, nil))

	items := []records.Record{
		&records.TextClassificationRecord{ExternalId: "1", Text: "great movie", Annotation: []string{"pos"}, Status: records.StatusValidated},
		&records.TextClassificationRecord{ExternalId: "2", Text: "awful plot", Annotation: []string{"neg"}, Status: records.StatusValidated},
		&records.TextClassificationRecord{ExternalId: "3", Text: "great cast", Annotation: []string{"pos"}, Status: records.StatusValidated, Metadata: map[string]any{"source": "web"}},
		&records.TextClassificationRecord{ExternalId: "4", Text: "awful sound", Annotation: []string{"neg"}, Status: records.StatusValidated},
	}
	data, err := json.Marshal(items)
	require.NoError(t, err)
	require.NoError(t, httpRequest(router, "POST", "/datasets/reviews/records/bulk", api.BulkRecordsRequest{Workspace: "team", Records: data}, nil))

	// Upserting by external id replaces the annotation and keeps the metadata.
	update, err := json.Marshal([]records.Record{
		&records.TextClassificationRecord{ExternalId: "3", Text: "great cast", Annotation: []string{"neg"}},
	})
	require.NoError(t, err)
	var upsert api.BulkRecordsResponse
	require.NoError(t, httpRequest(router, "PUT", "/datasets/reviews/records/bulk", api.BulkRecordsRequest{Workspace: "team", Records: update}, &upsert))
	assert.Len(t, upsert.Updated, 1)

	ds, err := loader.NewDBLoader(db).Load(ctx, "reviews", loader.LoadOptions{Workspace: "team", Query: `metadata.source = "web"`})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, []string{"neg"}, ds.Records()[0].Labels())

	seed := int64(7)
	trainSize := 1.0
	var submitted api.CreateTrainingResponse
	require.NoError(t, httpRequest(router, "POST", "/trainings", api.CreateTrainingRequest{
		DatasetName: "reviews",
		Workspace:   "team",
		Framework:   "transformers",
		TrainSize:   &trainSize,
		Seed:        &seed,
	}, &submitted))

	worker := core.NewTaskProcessor(db, store, queue, keywordLoaders(), "models", t.TempDir())
	go worker.Start(ctx)
	defer worker.Stop()

	select {
	case outcome := <-results:
		require.Equal(t, "ack", outcome)
	case <-ctx.Done():
		t.Fatal("timed out waiting for training job")
	}

	var job api.TrainingJob
	require.NoError(t, httpRequest(router, "GET", "/trainings/"+submitted.JobId.String(), nil, &job))
	assert.Equal(t, database.JobCompleted, job.Status)
	assert.Equal(t, submitted.JobId.String(), job.ModelPrefix)
	require.NotNil(t, job.CompletionTime)

	saved, err := os.ReadFile(filepath.Join(storeDir, "models", job.ModelPrefix, "keywords.json"))
	require.NoError(t, err)

	var keywords map[string]string
	require.NoError(t, json.Unmarshal(saved, &keywords))
	assert.Equal(t, "pos", keywords["movie"])
	assert.Equal(t, "neg", keywords["awful"])
}

func TestTrainerFacadeOnPostgres(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	db, err := database.NewDatabase(database.DialectPostgres, setupPostgresContainer(t, ctx))
	require.NoError(t, err)

	dataset, err := database.CreateDataset(ctx, db, "team", "reviews", records.TextClassification)
	require.NoError(t, err)
	_, err = database.CreateRecordsBulk(ctx, db, dataset, []records.Record{
		&records.TextClassificationRecord{Text: "great movie", Annotation: []string{"pos"}, Status: records.StatusValidated},
		&records.TextClassificationRecord{Text: "awful plot", Annotation: []string{"neg"}, Status: records.StatusValidated},
	})
	require.NoError(t, err)

	trainSize := 1.0
	trainer, err := core.NewTrainer(ctx, loader.NewDBLoader(db), keywordLoaders(), core.Options{
		Name:      "reviews",
		Workspace: "team",
		Framework: "setfit",
		TrainSize: &trainSize,
	})
	require.NoError(t, err)
	defer trainer.Release()

	assert.Equal(t, records.TextClassification, trainer.Task())
	assert.False(t, trainer.MultiLabel())

	require.NoError(t, trainer.Train(""))

	preds, err := trainer.Predict("what a great day", true)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	require.NotNil(t, preds[0].Record)
	assert.Equal(t, records.TextClassification, preds[0].Record.Task())

	_, err = core.NewTrainer(ctx, loader.NewDBLoader(db), keywordLoaders(), core.Options{Name: "missing", Workspace: "team", Framework: "setfit"})
	assert.ErrorIs(t, err, loader.ErrDatasetNotFound)
}
