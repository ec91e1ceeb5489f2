package core

import (
	"argilla-trainer/internal/core/python"
	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/records"
)

// NewAdapterLoaders returns a loader per framework, each running the framework
// in a plugin process started by start.
func NewAdapterLoaders(start python.StartFunc) map[records.Framework]types.AdapterLoader {
	return map[records.Framework]types.AdapterLoader{
		records.Transformers: func(cfg types.AdapterConfig) (types.Adapter, error) {
			t, err := python.NewTransformersTrainer(start, cfg)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
		records.SetFit: func(cfg types.AdapterConfig) (types.Adapter, error) {
			t, err := python.NewSetFitTrainer(start, cfg)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
		records.Spacy: func(cfg types.AdapterConfig) (types.Adapter, error) {
			t, err := python.NewSpacyTrainer(start, cfg)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
	}
}
