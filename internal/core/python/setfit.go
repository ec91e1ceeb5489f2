package python

import (
	"fmt"

	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/records"
)

const DefaultSetFitModel = "sentence-transformers/all-MiniLM-L6-v2"

type SetFitTrainer struct {
	*pluginTrainer
}

func NewSetFitTrainer(start StartFunc, cfg types.AdapterConfig) (*SetFitTrainer, error) {
	if cfg.Dataset == nil {
		return nil, ErrMissingDataset
	}
	if cfg.RecordType != records.TextClassification {
		return nil, fmt.Errorf("%w: setfit only supports %s, got %s", ErrUnsupportedTask, records.TextClassification, cfg.RecordType)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultSetFitModel
	}

	modelConfig := map[string]any{
		"pretrained_model_name_or_path": cfg.Model,
		"multi_target_strategy":         nil,
		"use_differentiable_head":       false,
	}
	if cfg.MultiLabel {
		modelConfig["multi_target_strategy"] = "one-vs-rest"
	}

	trainerConfig := map[string]any{
		"num_iterations": 20,
		"num_epochs":     1,
		"batch_size":     16,
		"learning_rate":  2e-5,
		"column_mapping": map[string]string{"text": "text", "label": "label"},
	}

	multiLabel := cfg.MultiLabel
	validate := func(key string, value any) error {
		switch key {
		case "num_iterations", "num_epochs", "batch_size":
			return requirePositiveInt(key, value)
		case "learning_rate":
			return requirePositive(key, value)
		case "use_differentiable_head":
			return requireBool(key, value)
		case "multi_target_strategy":
			if !multiLabel {
				return fmt.Errorf("%w: '%s' is only used for multi label datasets", ErrInvalidConfig, key)
			}
			return requireOneOf(key, value, "one-vs-rest", "multi-output", "classifier-chain")
		case "column_mapping":
			switch value.(type) {
			case map[string]string, map[string]any:
			default:
				return fmt.Errorf("%w: '%s' must be a mapping of column names, got %T", ErrInvalidConfig, key, value)
			}
		}
		return nil
	}

	base, err := newPluginTrainer(start, records.SetFit, cfg, modelConfig, trainerConfig, validate)
	if err != nil {
		return nil, err
	}
	return &SetFitTrainer{pluginTrainer: base}, nil
}

func (t *SetFitTrainer) String() string {
	return t.summary("SetFitTrainer")
}
