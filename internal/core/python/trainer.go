package python

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/records"
	"argilla-trainer/plugin/shared"
)

var (
	ErrUnknownConfigKey  = errors.New("unknown config key")
	ErrInvalidConfig     = errors.New("invalid config value")
	ErrMissingDataset    = errors.New("adapter requires a prepared dataset")
	ErrMissingOutputDir  = errors.New("output directory is required")
	ErrEmptyPredictInput = errors.New("no texts to predict")
	ErrUnsupportedTask   = errors.New("unsupported task")
)

// pluginTrainer holds the state shared by all framework adapters: the settings
// sent to the framework process and the process itself.
type pluginTrainer struct {
	framework records.Framework
	cfg       types.AdapterConfig

	modelConfig   map[string]any
	trainerConfig map[string]any

	// validate checks a single override before it is applied.
	validate func(key string, value any) error

	backend     shared.Backend
	release     func()
	description string
}

func newPluginTrainer(
	start StartFunc,
	framework records.Framework,
	cfg types.AdapterConfig,
	modelConfig, trainerConfig map[string]any,
	validate func(key string, value any) error,
) (*pluginTrainer, error) {
	if cfg.Dataset == nil {
		return nil, ErrMissingDataset
	}

	dataset, err := json.Marshal(cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("error encoding prepared dataset: %w", err)
	}

	t := &pluginTrainer{
		framework:     framework,
		cfg:           cfg,
		modelConfig:   modelConfig,
		trainerConfig: trainerConfig,
		validate:      validate,
	}

	modelJSON, trainerJSON, err := t.encodeConfig(t.modelConfig, t.trainerConfig)
	if err != nil {
		return nil, err
	}

	backend, release, err := start(framework)
	if err != nil {
		return nil, fmt.Errorf("error starting %s backend: %w", framework, err)
	}

	req := shared.InitRequest{
		Framework:     string(framework),
		Task:          string(cfg.RecordType),
		MultiLabel:    cfg.MultiLabel,
		Model:         cfg.Model,
		Dataset:       dataset,
		ModelConfig:   modelJSON,
		TrainerConfig: trainerJSON,
	}
	if cfg.Seed != nil {
		req.HasSeed = true
		req.Seed = *cfg.Seed
	}

	if err := backend.Init(req); err != nil {
		release()
		return nil, fmt.Errorf("error initializing %s backend: %w", framework, err)
	}

	t.backend = backend
	t.release = release

	if desc, err := backend.Describe(); err == nil {
		t.description = desc
	}

	return t, nil
}

func (t *pluginTrainer) encodeConfig(model, trainer map[string]any) ([]byte, []byte, error) {
	modelJSON, err := json.Marshal(model)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding model config: %w", err)
	}
	trainerJSON, err := json.Marshal(trainer)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding trainer config: %w", err)
	}
	return modelJSON, trainerJSON, nil
}

// UpdateConfig applies overrides to the model and trainer settings. Every key
// must already exist in one of the two; on any error nothing is applied.
func (t *pluginTrainer) UpdateConfig(overrides map[string]any) error {
	model := maps.Clone(t.modelConfig)
	trainer := maps.Clone(t.trainerConfig)

	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		value := overrides[key]
		if t.validate != nil {
			if err := t.validate(key, value); err != nil {
				return err
			}
		}
		switch {
		case hasKey(model, key):
			model[key] = value
		case hasKey(trainer, key):
			trainer[key] = value
		default:
			return fmt.Errorf("%w: '%s' is not a %s model or trainer setting", ErrUnknownConfigKey, key, t.framework)
		}
	}

	modelJSON, trainerJSON, err := t.encodeConfig(model, trainer)
	if err != nil {
		return err
	}

	if err := t.backend.UpdateConfig(shared.UpdateConfigRequest{ModelConfig: modelJSON, TrainerConfig: trainerJSON}); err != nil {
		return err
	}

	t.modelConfig = model
	t.trainerConfig = trainer
	return nil
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func (t *pluginTrainer) Train(outputDir string) error {
	return t.backend.Train(outputDir)
}

func (t *pluginTrainer) Save(outputDir string) error {
	if outputDir == "" {
		return ErrMissingOutputDir
	}
	return t.backend.Save(outputDir)
}

func (t *pluginTrainer) Predict(text string, asRecords bool) ([]types.Prediction, error) {
	return t.PredictBatch([]string{text}, asRecords)
}

func (t *pluginTrainer) PredictBatch(texts []string, asRecords bool) ([]types.Prediction, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyPredictInput
	}

	results, err := t.backend.Predict(texts)
	if err != nil {
		return nil, err
	}

	preds := make([]types.Prediction, len(results))
	for i, res := range results {
		preds[i], err = convertResult(res)
		if err != nil {
			return nil, err
		}
		if asRecords {
			preds[i].Record = preds[i].AsRecord(t.cfg.RecordType, t.cfg.MultiLabel)
		}
	}
	return preds, nil
}

// convertResult maps a backend result to a prediction. Backends that tag
// tokens instead of returning spans get their BIO tags turned into entities.
func convertResult(res shared.PredictResult) (types.Prediction, error) {
	pred := types.Prediction{Text: res.Text, Tokens: res.Tokens}
	if len(res.Labels) > 0 {
		pred.Labels = make([]records.ClassPrediction, len(res.Labels))
		for i, l := range res.Labels {
			pred.Labels[i] = records.ClassPrediction{Label: l.Label, Score: l.Score}
		}
	}
	switch {
	case len(res.Spans) > 0:
		pred.Entities = make([]records.Entity, len(res.Spans))
		for i, s := range res.Spans {
			pred.Entities[i] = records.Entity{Label: s.Label, Start: s.Start, End: s.End, Score: s.Score}
		}
	case len(res.Tags) > 0:
		entities, err := records.EntitiesFromBIO(res.Text, res.Tokens, res.Tags)
		if err != nil {
			return pred, fmt.Errorf("error converting predicted tags of '%s': %w", res.Text, err)
		}
		pred.Entities = entities
	}
	return pred, nil
}

func (t *pluginTrainer) Release() {
	if t.release == nil {
		return
	}

	t.release()
	t.release = nil
}

func formatConfig(cfg map[string]any) string {
	parts := make([]string, 0, len(cfg))
	for _, key := range slices.Sorted(maps.Keys(cfg)) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, cfg[key]))
	}
	return strings.Join(parts, ", ")
}

func (t *pluginTrainer) summary(title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "  task: %s (multi_label=%v)\n", t.cfg.RecordType, t.cfg.MultiLabel)
	if t.cfg.Model != "" {
		fmt.Fprintf(&b, "  model: %s\n", t.cfg.Model)
	} else {
		fmt.Fprintf(&b, "  model: blank pipeline\n")
	}
	fmt.Fprintf(&b, "  labels: %s\n", strings.Join(t.cfg.Dataset.Labels, ", "))
	fmt.Fprintf(&b, "  train examples: %d, test examples: %d\n", len(t.cfg.Dataset.Train), len(t.cfg.Dataset.Test))
	fmt.Fprintf(&b, "  model config: %s\n", formatConfig(t.modelConfig))
	fmt.Fprintf(&b, "  trainer config: %s", formatConfig(t.trainerConfig))
	if t.description != "" {
		fmt.Fprintf(&b, "\n  pipeline: %s", t.description)
	}
	return b.String()
}

func (t *pluginTrainer) ModelConfig() map[string]any {
	return maps.Clone(t.modelConfig)
}

func (t *pluginTrainer) TrainerConfig() map[string]any {
	return maps.Clone(t.trainerConfig)
}
