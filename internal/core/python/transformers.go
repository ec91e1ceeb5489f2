package python

import (
	"fmt"

	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/records"
)

const DefaultTransformersModel = "distilbert-base-uncased"

type TransformersTrainer struct {
	*pluginTrainer
}

func NewTransformersTrainer(start StartFunc, cfg types.AdapterConfig) (*TransformersTrainer, error) {
	if cfg.Dataset == nil {
		return nil, ErrMissingDataset
	}
	if cfg.Model == "" {
		cfg.Model = DefaultTransformersModel
	}

	// Evaluation needs a test split.
	evalStrategy := "no"
	if cfg.Dataset.HasTestSplit() {
		evalStrategy = "epoch"
	}

	modelConfig := map[string]any{
		"pretrained_model_name_or_path": cfg.Model,
		"revision":                      "main",
		"ignore_mismatched_sizes":       false,
	}
	trainerConfig := map[string]any{
		"num_train_epochs":            3,
		"learning_rate":               5e-5,
		"per_device_train_batch_size": 8,
		"weight_decay":                0.0,
		"evaluation_strategy":         evalStrategy,
		"logging_steps":               30,
	}

	hasTest := cfg.Dataset.HasTestSplit()
	validate := func(key string, value any) error {
		switch key {
		case "num_train_epochs", "learning_rate":
			return requirePositive(key, value)
		case "per_device_train_batch_size", "logging_steps":
			return requirePositiveInt(key, value)
		case "weight_decay":
			if f, ok := toFloat(value); !ok || f < 0 {
				return fmt.Errorf("%w: '%s' must be a non negative number, got %v", ErrInvalidConfig, key, value)
			}
		case "ignore_mismatched_sizes":
			return requireBool(key, value)
		case "evaluation_strategy":
			if err := requireOneOf(key, value, "no", "steps", "epoch"); err != nil {
				return err
			}
			if value != "no" && !hasTest {
				return fmt.Errorf("%w: '%s' requires a test split, set a train size below 1", ErrInvalidConfig, key)
			}
		}
		return nil
	}

	base, err := newPluginTrainer(start, records.Transformers, cfg, modelConfig, trainerConfig, validate)
	if err != nil {
		return nil, err
	}
	return &TransformersTrainer{pluginTrainer: base}, nil
}

func (t *TransformersTrainer) String() string {
	return t.summary("TransformersTrainer")
}
