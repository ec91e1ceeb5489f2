package core

import (
	"context"
	"errors"
	"testing"

	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/loader"
	"argilla-trainer/internal/records"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLoader struct {
	datasets map[string]records.Dataset
	calls    []loader.LoadOptions
}

func (m *mockLoader) Load(ctx context.Context, name string, opts loader.LoadOptions) (records.Dataset, error) {
	m.calls = append(m.calls, opts)
	ds, ok := m.datasets[name]
	if !ok {
		return nil, loader.ErrDatasetNotFound
	}
	if opts.Limit > 0 && ds.Len() > opts.Limit {
		recs := ds.Records()[:opts.Limit]
		return records.NewDataset(ds.Task(), recs)
	}
	return ds, nil
}

// otherDataset is a dataset type the trainer does not know about.
type otherDataset struct {
	prepared bool
}

func (d *otherDataset) Task() records.TaskType { return "Other" }

func (d *otherDataset) Len() int { return 1 }

func (d *otherDataset) Records() []records.Record { return nil }

func (d *otherDataset) PrepareForTraining(opts records.PrepareOptions) (*records.PreparedDataset, error) {
	d.prepared = true
	return &records.PreparedDataset{}, nil
}

type mockAdapter struct {
	cfg types.AdapterConfig

	err         error
	updates     []map[string]any
	predictions [][]string
	asRecords   []bool
	trainDirs   []string
	saveDirs    []string
	released    bool
}

func (m *mockAdapter) Train(outputDir string) error {
	m.trainDirs = append(m.trainDirs, outputDir)
	return m.err
}

func (m *mockAdapter) Predict(text string, asRecords bool) ([]types.Prediction, error) {
	return m.PredictBatch([]string{text}, asRecords)
}

func (m *mockAdapter) PredictBatch(texts []string, asRecords bool) ([]types.Prediction, error) {
	m.predictions = append(m.predictions, texts)
	m.asRecords = append(m.asRecords, asRecords)
	if m.err != nil {
		return nil, m.err
	}
	out := make([]types.Prediction, len(texts))
	for i, text := range texts {
		out[i] = types.Prediction{Text: text}
		if asRecords {
			out[i].Record = out[i].AsRecord(m.cfg.RecordType, m.cfg.MultiLabel)
		}
	}
	return out, nil
}

func (m *mockAdapter) Save(outputDir string) error {
	m.saveDirs = append(m.saveDirs, outputDir)
	return m.err
}

func (m *mockAdapter) UpdateConfig(overrides map[string]any) error {
	m.updates = append(m.updates, overrides)
	return m.err
}

func (m *mockAdapter) String() string { return "mock adapter" }

func (m *mockAdapter) Release() { m.released = true }

type adapterRecorder struct {
	adapters map[records.Framework]*mockAdapter
}

func (r *adapterRecorder) loaders() map[records.Framework]types.AdapterLoader {
	r.adapters = map[records.Framework]*mockAdapter{}
	out := map[records.Framework]types.AdapterLoader{}
	for _, fw := range records.Frameworks() {
		out[fw] = func(cfg types.AdapterConfig) (types.Adapter, error) {
			a := &mockAdapter{cfg: cfg}
			r.adapters[fw] = a
			return a, nil
		}
	}
	return out
}

func textDataset(multiLabel bool) *records.TextClassificationDataset {
	ds := &records.TextClassificationDataset{}
	for i, text := range []string{"great film", "awful film", "fine film", "boring film"} {
		label := "pos"
		if i%2 == 1 {
			label = "neg"
		}
		ds.Items = append(ds.Items, &records.TextClassificationRecord{
			Id:         uuid.New(),
			Text:       text,
			MultiLabel: multiLabel,
			Annotation: []string{label},
			Status:     records.StatusValidated,
		})
	}
	return ds
}

func tokenDataset() *records.TokenClassificationDataset {
	return &records.TokenClassificationDataset{Items: []*records.TokenClassificationRecord{
		{Id: uuid.New(), Text: "Ada lives in Paris", Tokens: []string{"Ada", "lives", "in", "Paris"}, Annotation: []records.Entity{{Label: "PER", Start: 0, End: 3}, {Label: "LOC", Start: 13, End: 18}}, Status: records.StatusValidated},
		{Id: uuid.New(), Text: "Bob sleeps", Tokens: []string{"Bob", "sleeps"}, Annotation: []records.Entity{{Label: "PER", Start: 0, End: 3}}, Status: records.StatusValidated},
	}}
}

func newLoader() *mockLoader {
	return &mockLoader{datasets: map[string]records.Dataset{
		"text":       textDataset(false),
		"multi":      textDataset(true),
		"tokens":     tokenDataset(),
		"empty":      &records.TextClassificationDataset{},
		"text2text":  &records.Text2TextDataset{Items: []*records.Text2TextRecord{{Id: uuid.New(), Text: "hi", Annotation: "hello"}}},
		"unexpected": &otherDataset{},
	}}
}

func TestNewTrainer_TextClassification(t *testing.T) {
	for _, fw := range records.Frameworks() {
		t.Run(string(fw), func(t *testing.T) {
			l := newLoader()
			rec := &adapterRecorder{}
			seed := int64(3)
			trainSize := 0.5

			tr, err := NewTrainer(context.Background(), l, rec.loaders(), Options{
				Name:      "multi",
				Workspace: "team",
				Framework: string(fw),
				Model:     "base-model",
				TrainSize: &trainSize,
				Seed:      &seed,
			})
			require.NoError(t, err)

			assert.Equal(t, records.TextClassification, tr.Task())
			assert.True(t, tr.MultiLabel())
			assert.Equal(t, fw, tr.Framework())
			assert.Equal(t, "multi", tr.Name())

			adapter := rec.adapters[fw]
			require.NotNil(t, adapter)
			assert.Same(t, adapter, tr.Adapter())
			assert.Equal(t, records.TextClassification, adapter.cfg.RecordType)
			assert.True(t, adapter.cfg.MultiLabel)
			assert.Equal(t, "base-model", adapter.cfg.Model)
			assert.Equal(t, &seed, adapter.cfg.Seed)
			require.NotNil(t, adapter.cfg.Dataset)
			assert.Equal(t, fw, adapter.cfg.Dataset.Framework)
			assert.Len(t, adapter.cfg.Dataset.Train, 2)
			assert.Len(t, adapter.cfg.Dataset.Test, 2)

			require.Len(t, l.calls, 2)
			assert.Equal(t, loader.LoadOptions{Workspace: "team", Limit: 1}, l.calls[0])
			assert.Equal(t, loader.LoadOptions{Workspace: "team"}, l.calls[1])
		})
	}
}

func TestNewTrainer_TokenClassification(t *testing.T) {
	for _, fw := range []records.Framework{records.Transformers, records.Spacy} {
		t.Run(string(fw), func(t *testing.T) {
			rec := &adapterRecorder{}
			tr, err := NewTrainer(context.Background(), newLoader(), rec.loaders(), Options{Name: "tokens", Framework: string(fw)})
			require.NoError(t, err)
			assert.Equal(t, records.TokenClassification, tr.Task())
			assert.False(t, tr.MultiLabel())
			assert.Equal(t, records.TokenClassification, rec.adapters[fw].cfg.RecordType)
		})
	}
}

func TestNewTrainer_SpacyLang(t *testing.T) {
	rec := &adapterRecorder{}
	_, err := NewTrainer(context.Background(), newLoader(), rec.loaders(), Options{Name: "text", Framework: "spacy"})
	require.NoError(t, err)
	assert.Equal(t, records.DefaultSpacyLang, rec.adapters[records.Spacy].cfg.Dataset.Lang)

	_, err = NewTrainer(context.Background(), newLoader(), rec.loaders(), Options{Name: "text", Framework: "spacy", Lang: "de"})
	require.NoError(t, err)
	assert.Equal(t, "de", rec.adapters[records.Spacy].cfg.Dataset.Lang)

	_, err = NewTrainer(context.Background(), newLoader(), rec.loaders(), Options{Name: "text", Framework: "transformers", Lang: "de"})
	require.NoError(t, err)
	assert.Empty(t, rec.adapters[records.Transformers].cfg.Dataset.Lang)
}

func TestNewTrainer_LoadOptionsForwarded(t *testing.T) {
	l := newLoader()
	opts := loader.LoadOptions{Workspace: "other", Query: `label = "pos"`}
	_, err := NewTrainer(context.Background(), l, (&adapterRecorder{}).loaders(), Options{
		Name: "text", Workspace: "team", Framework: "setfit", LoadOptions: opts,
	})
	require.NoError(t, err)
	require.Len(t, l.calls, 2)
	assert.Equal(t, opts, l.calls[1])
}

func TestNewTrainer_EmptyDataset(t *testing.T) {
	for _, fw := range []string{"transformers", "setfit", "spacy", "not-a-framework"} {
		rec := &adapterRecorder{}
		_, err := NewTrainer(context.Background(), newLoader(), rec.loaders(), Options{Name: "empty", Framework: fw})
		assert.ErrorIs(t, err, ErrEmptyDataset, fw)
		assert.Empty(t, rec.adapters)
	}
}

func TestNewTrainer_SetFitRequiresTextClassification(t *testing.T) {
	rec := &adapterRecorder{}
	_, err := NewTrainer(context.Background(), newLoader(), rec.loaders(), Options{Name: "tokens", Framework: "setfit"})
	assert.ErrorIs(t, err, ErrFrameworkTaskMismatch)
	assert.Contains(t, err.Error(), "setfit only supports TextClassification")
	assert.Empty(t, rec.adapters)
}

func TestNewTrainer_InvalidFramework(t *testing.T) {
	rec := &adapterRecorder{}
	_, err := NewTrainer(context.Background(), newLoader(), rec.loaders(), Options{Name: "text", Framework: "not-a-framework"})
	assert.ErrorIs(t, err, records.ErrInvalidFramework)
	assert.Empty(t, rec.adapters)

	// The framework is validated before the dataset is prepared.
	ds := &otherDataset{}
	l := &mockLoader{datasets: map[string]records.Dataset{
		"text": &switchingDataset{first: textDataset(false), full: ds},
	}}
	_, err = NewTrainer(context.Background(), l, rec.loaders(), Options{Name: "text", Framework: "not-a-framework"})
	assert.ErrorIs(t, err, records.ErrInvalidFramework)
	assert.False(t, ds.prepared)
}

// switchingDataset answers the snapshot load with first and the full load with
// full.
type switchingDataset struct {
	first records.Dataset
	full  records.Dataset
}

func (s *switchingDataset) Task() records.TaskType { return s.first.Task() }

func (s *switchingDataset) Len() int { return s.full.Len() + 1 }

func (s *switchingDataset) Records() []records.Record { return s.first.Records() }

func (s *switchingDataset) PrepareForTraining(opts records.PrepareOptions) (*records.PreparedDataset, error) {
	return s.full.PrepareForTraining(opts)
}

func TestNewTrainer_UnsupportedTasks(t *testing.T) {
	_, err := NewTrainer(context.Background(), newLoader(), (&adapterRecorder{}).loaders(), Options{Name: "text2text", Framework: "transformers"})
	assert.ErrorIs(t, err, ErrText2TextNotSupported)
	assert.NotErrorIs(t, err, ErrUnsupportedDatasetType)
	assert.Contains(t, err.Error(), "not supported yet")

	_, err = NewTrainer(context.Background(), newLoader(), (&adapterRecorder{}).loaders(), Options{Name: "unexpected", Framework: "transformers"})
	assert.ErrorIs(t, err, ErrUnsupportedDatasetType)
	assert.NotErrorIs(t, err, ErrText2TextNotSupported)
}

func TestNewTrainer_LoaderErrors(t *testing.T) {
	_, err := NewTrainer(context.Background(), newLoader(), (&adapterRecorder{}).loaders(), Options{Name: "", Framework: "transformers"})
	assert.ErrorIs(t, err, ErrMissingDatasetName)

	_, err = NewTrainer(context.Background(), newLoader(), (&adapterRecorder{}).loaders(), Options{Name: "missing", Framework: "transformers"})
	assert.ErrorIs(t, err, loader.ErrDatasetNotFound)

	_, err = NewTrainer(context.Background(), newLoader(), map[records.Framework]types.AdapterLoader{}, Options{Name: "text", Framework: "spacy"})
	assert.ErrorIs(t, err, ErrMissingAdapterLoader)
}

func TestNewTrainer_AdapterConstructionError(t *testing.T) {
	adapterErr := errors.New("cannot start backend")
	loaders := map[records.Framework]types.AdapterLoader{
		records.Transformers: func(cfg types.AdapterConfig) (types.Adapter, error) { return nil, adapterErr },
	}
	_, err := NewTrainer(context.Background(), newLoader(), loaders, Options{Name: "text", Framework: "transformers"})
	assert.Equal(t, adapterErr, err)
}

func TestTrainer_Forwarding(t *testing.T) {
	rec := &adapterRecorder{}
	tr, err := NewTrainer(context.Background(), newLoader(), rec.loaders(), Options{Name: "text", Framework: "transformers"})
	require.NoError(t, err)
	adapter := rec.adapters[records.Transformers]

	preds, err := tr.Predict("hello", false)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, "hello", preds[0].Text)
	assert.Nil(t, preds[0].Record)

	preds, err = tr.PredictBatch([]string{"a", "b"}, true)
	require.NoError(t, err)
	require.Len(t, preds, 2)
	assert.IsType(t, &records.TextClassificationRecord{}, preds[1].Record)
	assert.Equal(t, [][]string{{"hello"}, {"a", "b"}}, adapter.predictions)
	assert.Equal(t, []bool{false, true}, adapter.asRecords)

	require.NoError(t, tr.Train(""))
	require.NoError(t, tr.Train("/tmp/out"))
	assert.Equal(t, []string{"", "/tmp/out"}, adapter.trainDirs)

	require.NoError(t, tr.Save("/tmp/out"))
	assert.Equal(t, []string{"/tmp/out"}, adapter.saveDirs)

	overrides := map[string]any{"num_train_epochs": 2}
	require.NoError(t, tr.UpdateConfig(overrides))
	assert.Equal(t, []map[string]any{overrides}, adapter.updates)

	tr.Release()
	assert.True(t, adapter.released)
}

func TestTrainer_AdapterErrorsUnchanged(t *testing.T) {
	rec := &adapterRecorder{}
	tr, err := NewTrainer(context.Background(), newLoader(), rec.loaders(), Options{Name: "text", Framework: "setfit"})
	require.NoError(t, err)

	adapterErr := errors.New("cuda out of memory")
	rec.adapters[records.SetFit].err = adapterErr

	assert.Equal(t, adapterErr, tr.Train("/tmp/out"))
	assert.Equal(t, adapterErr, tr.Save("/tmp/out"))
	assert.Equal(t, adapterErr, tr.UpdateConfig(map[string]any{"x": 1}))
	_, err = tr.Predict("x", false)
	assert.Equal(t, adapterErr, err)
}

func TestTrainer_String(t *testing.T) {
	seed := int64(9)
	tr, err := NewTrainer(context.Background(), newLoader(), (&adapterRecorder{}).loaders(), Options{Name: "text", Framework: "spacy", Seed: &seed})
	require.NoError(t, err)

	summary := tr.String()
	assert.Contains(t, summary, "dataset: text")
	assert.Contains(t, summary, "task: TextClassification")
	assert.Contains(t, summary, "multi_label: false")
	assert.Contains(t, summary, "train_size: <nil>")
	assert.Contains(t, summary, "seed: 9")
	assert.Contains(t, summary, "mock adapter")
}
