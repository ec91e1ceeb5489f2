package types

import (
	"argilla-trainer/internal/records"
)

// AdapterConfig is the normalized set of parameters every framework adapter is
// constructed from.
type AdapterConfig struct {
	RecordType records.TaskType
	Dataset    *records.PreparedDataset
	MultiLabel bool
	Seed       *int64
	Model      string
}

type Adapter interface {
	// Train fits the model on the prepared dataset. A non empty outputDir also
	// saves the trained model there.
	Train(outputDir string) error

	Predict(text string, asRecords bool) ([]Prediction, error)

	PredictBatch(texts []string, asRecords bool) ([]Prediction, error)

	Save(outputDir string) error

	UpdateConfig(overrides map[string]any) error

	String() string

	Release()
}

type AdapterLoader func(cfg AdapterConfig) (Adapter, error)
