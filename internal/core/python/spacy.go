package python

import (
	"fmt"

	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/records"
)

type SpacyTrainer struct {
	*pluginTrainer
}

// spacyComponent is the pipeline component trained for a task.
func spacyComponent(task records.TaskType, multiLabel bool) string {
	switch {
	case task == records.TokenClassification:
		return "ner"
	case multiLabel:
		return "textcat_multilabel"
	default:
		return "textcat"
	}
}

// NewSpacyTrainer builds a spaCy adapter. Without a model a blank pipeline of
// the dataset language is created.
func NewSpacyTrainer(start StartFunc, cfg types.AdapterConfig) (*SpacyTrainer, error) {
	if cfg.Dataset == nil {
		return nil, ErrMissingDataset
	}

	lang := cfg.Dataset.Lang
	if lang == "" {
		lang = records.DefaultSpacyLang
	}

	modelConfig := map[string]any{
		"model":     cfg.Model,
		"lang":      lang,
		"component": spacyComponent(cfg.RecordType, cfg.MultiLabel),
	}
	trainerConfig := map[string]any{
		"dropout":        0.2,
		"max_epochs":     0,
		"max_steps":      20000,
		"eval_frequency": 200,
		"patience":       1600,
		"gpu_id":         -1,
		"optimize":       "efficiency",
		"freeze_tok2vec": false,
	}

	validate := func(key string, value any) error {
		switch key {
		case "component", "lang":
			return fmt.Errorf("%w: '%s' is derived from the dataset and cannot be changed", ErrInvalidConfig, key)
		case "dropout":
			if f, ok := toFloat(value); !ok || f < 0 || f >= 1 {
				return fmt.Errorf("%w: '%s' must be in [0, 1), got %v", ErrInvalidConfig, key, value)
			}
		case "max_epochs", "max_steps", "patience":
			if f, ok := toFloat(value); !ok || f < 0 || !isInt(value) {
				return fmt.Errorf("%w: '%s' must be a non negative integer, got %v", ErrInvalidConfig, key, value)
			}
		case "eval_frequency":
			return requirePositiveInt(key, value)
		case "gpu_id":
			if f, ok := toFloat(value); !ok || f < -1 || !isInt(value) {
				return fmt.Errorf("%w: '%s' must be -1 (cpu) or a device index, got %v", ErrInvalidConfig, key, value)
			}
		case "optimize":
			return requireOneOf(key, value, "efficiency", "accuracy")
		case "freeze_tok2vec":
			return requireBool(key, value)
		}
		return nil
	}

	base, err := newPluginTrainer(start, records.Spacy, cfg, modelConfig, trainerConfig, validate)
	if err != nil {
		return nil, err
	}
	return &SpacyTrainer{pluginTrainer: base}, nil
}

func (t *SpacyTrainer) String() string {
	return t.summary("SpacyTrainer")
}
