package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/loader"
	"argilla-trainer/internal/records"
)

var (
	ErrMissingDatasetName     = errors.New("dataset name is required")
	ErrEmptyDataset           = errors.New("dataset is empty")
	ErrText2TextNotSupported  = errors.New("Text2Text datasets are not supported yet")
	ErrUnsupportedDatasetType = errors.New("unsupported dataset type")
	ErrFrameworkTaskMismatch  = errors.New("framework does not support the dataset task")
	ErrMissingAdapterLoader   = errors.New("no adapter loader registered for framework")
)

type Options struct {
	Name      string
	Workspace string

	// Framework is parsed with records.ParseFramework.
	Framework string

	// Lang is only used by spacy. It defaults to a blank english pipeline.
	Lang string

	// Model is the base model, empty uses the adapter default.
	Model string

	TrainSize *float64
	Seed      *int64

	// LoadOptions is passed to the full dataset load. An empty workspace
	// defaults to Workspace.
	LoadOptions loader.LoadOptions
}

// Trainer loads an annotated dataset, prepares it for one framework and
// forwards training and inference to that framework's adapter.
type Trainer struct {
	name       string
	workspace  string
	task       records.TaskType
	multiLabel bool
	trainSize  *float64
	seed       *int64
	model      string
	framework  records.Framework

	adapter types.Adapter
}

func NewTrainer(ctx context.Context, l loader.Loader, loaders map[records.Framework]types.AdapterLoader, opts Options) (*Trainer, error) {
	if opts.Name == "" {
		return nil, ErrMissingDatasetName
	}

	snapshot, err := l.Load(ctx, opts.Name, loader.LoadOptions{Workspace: opts.Workspace, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("error loading dataset '%s': %w", opts.Name, err)
	}
	if snapshot.Len() == 0 {
		return nil, fmt.Errorf("%w: '%s' has no records", ErrEmptyDataset, opts.Name)
	}

	var (
		task       records.TaskType
		multiLabel bool
	)
	switch ds := snapshot.(type) {
	case *records.TextClassificationDataset:
		task = records.TextClassification
		multiLabel = ds.Items[0].MultiLabel
	case *records.TokenClassificationDataset:
		task = records.TokenClassification
	case *records.Text2TextDataset:
		return nil, ErrText2TextNotSupported
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedDatasetType, snapshot)
	}

	loadOpts := opts.LoadOptions
	if loadOpts.Workspace == "" {
		loadOpts.Workspace = opts.Workspace
	}
	dataset, err := l.Load(ctx, opts.Name, loadOpts)
	if err != nil {
		return nil, fmt.Errorf("error loading dataset '%s': %w", opts.Name, err)
	}

	framework, err := records.ParseFramework(opts.Framework)
	if err != nil {
		return nil, err
	}

	switch framework {
	case records.SetFit:
		if task != records.TextClassification {
			return nil, fmt.Errorf("%w: setfit only supports %s tasks", ErrFrameworkTaskMismatch, records.TextClassification)
		}
	case records.Transformers, records.Spacy:
		// No task restriction.
	}

	prepareOpts := records.PrepareOptions{
		Framework: framework,
		TrainSize: opts.TrainSize,
		Seed:      opts.Seed,
	}
	if framework == records.Spacy {
		prepareOpts.Lang = opts.Lang
		if prepareOpts.Lang == "" {
			prepareOpts.Lang = records.DefaultSpacyLang
		}
	}

	prepared, err := dataset.PrepareForTraining(prepareOpts)
	if err != nil {
		return nil, fmt.Errorf("error preparing dataset '%s' for %s: %w", opts.Name, framework, err)
	}

	newAdapter, ok := loaders[framework]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAdapterLoader, framework)
	}

	adapter, err := newAdapter(types.AdapterConfig{
		RecordType: task,
		Dataset:    prepared,
		MultiLabel: multiLabel,
		Seed:       opts.Seed,
		Model:      opts.Model,
	})
	if err != nil {
		return nil, err
	}

	t := &Trainer{
		name:       opts.Name,
		workspace:  opts.Workspace,
		task:       task,
		multiLabel: multiLabel,
		trainSize:  opts.TrainSize,
		seed:       opts.Seed,
		model:      opts.Model,
		framework:  framework,
		adapter:    adapter,
	}

	slog.Warn(t.String())

	return t, nil
}

func (t *Trainer) Name() string { return t.name }

func (t *Trainer) Task() records.TaskType { return t.task }

func (t *Trainer) MultiLabel() bool { return t.multiLabel }

func (t *Trainer) Framework() records.Framework { return t.framework }

func (t *Trainer) Adapter() types.Adapter { return t.adapter }

func (t *Trainer) UpdateConfig(overrides map[string]any) error {
	return t.adapter.UpdateConfig(overrides)
}

func (t *Trainer) Predict(text string, asRecords bool) ([]types.Prediction, error) {
	return t.adapter.Predict(text, asRecords)
}

func (t *Trainer) PredictBatch(texts []string, asRecords bool) ([]types.Prediction, error) {
	return t.adapter.PredictBatch(texts, asRecords)
}

// Train fits the adapter model. A non empty outputDir also saves the model.
func (t *Trainer) Train(outputDir string) error {
	return t.adapter.Train(outputDir)
}

func (t *Trainer) Save(outputDir string) error {
	return t.adapter.Save(outputDir)
}

func (t *Trainer) Release() {
	t.adapter.Release()
}

func optional[T any](v *T) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprint(*v)
}

const separator = "_________________________________________________________________"

func (t *Trainer) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trainer info:\n%s\n", separator)
	fmt.Fprintf(&b, "These baseline params are fixed:\n")
	fmt.Fprintf(&b, "    dataset: %s\n", t.name)
	if t.workspace != "" {
		fmt.Fprintf(&b, "    workspace: %s\n", t.workspace)
	}
	fmt.Fprintf(&b, "    task: %s\n", t.task)
	fmt.Fprintf(&b, "    multi_label: %v\n", t.multiLabel)
	fmt.Fprintf(&b, "    framework: %s\n", t.framework)
	if t.model != "" {
		fmt.Fprintf(&b, "    model: %s\n", t.model)
	}
	fmt.Fprintf(&b, "    train_size: %s\n", optional(t.trainSize))
	fmt.Fprintf(&b, "    seed: %s\n\n", optional(t.seed))
	fmt.Fprintf(&b, "%T info:\n%s\n", t.adapter, separator)
	fmt.Fprintf(&b, "The parameters are configurable via UpdateConfig:\n%s\n\n", t.adapter.String())
	fmt.Fprintf(&b, "Using the trainer:\n%s\n", separator)
	fmt.Fprintf(&b, "Train(outputDir) trains the model, a non empty outputDir also saves it.\n")
	fmt.Fprintf(&b, "Predict(text, true) and PredictBatch(texts, true) make predictions as records.\n")
	fmt.Fprintf(&b, "Save(outputDir) saves the model manually.")
	return b.String()
}
