package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"argilla-trainer/cmd"
	"argilla-trainer/internal/config"
	"argilla-trainer/internal/core"
	"argilla-trainer/internal/loader"

	"github.com/schollz/progressbar/v3"
)

const predictBatchSize = 32

type flags struct {
	file      string
	dataset   string
	workspace string
	framework string
	model     string
	lang      string
	query     string
	trainSize *float64
	seed      *int64
	output    string
	predict   string
	asRecords bool
	skipTrain bool
	overrides []string
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.file, "file", "", "yaml file describing the training run, other flags override it")
	flag.StringVar(&f.dataset, "dataset", "", "name of the dataset to train on")
	flag.StringVar(&f.workspace, "workspace", "", "workspace of the dataset")
	flag.StringVar(&f.framework, "framework", "", "one of transformers, setfit, spacy")
	flag.StringVar(&f.model, "model", "", "base model, empty uses the framework default")
	flag.StringVar(&f.lang, "lang", "", "spacy pipeline language")
	flag.StringVar(&f.query, "query", "", "filter applied to the dataset records")
	flag.StringVar(&f.output, "output", "", "directory the trained model is saved to")
	flag.StringVar(&f.predict, "predict", "", "file with one text per line to predict after training")
	flag.BoolVar(&f.asRecords, "as-records", false, "print predictions as records")
	flag.BoolVar(&f.skipTrain, "skip-train", false, "only print the trainer summary and predictions")
	flag.Func("train-size", "fraction of records used for training", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		f.trainSize = &v
		return nil
	})
	flag.Func("seed", "seed for the train/test split and the framework", func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		f.seed = &v
		return nil
	})
	flag.Func("set", "config override as key=value, may be repeated", func(s string) error {
		if !strings.Contains(s, "=") {
			return fmt.Errorf("expected key=value, got '%s'", s)
		}
		f.overrides = append(f.overrides, s)
		return nil
	})

	cmd.LoadEnvFile()

	return f
}

// overrideValue decodes a command line value as json when possible so numbers
// and booleans keep their type.
func overrideValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

func (f flags) options() (core.Options, map[string]any, error) {
	opts := core.Options{}
	overrides := map[string]any{}

	if f.file != "" {
		file, err := config.LoadTrainingFile(f.file)
		if err != nil {
			return opts, nil, err
		}
		opts = core.Options{
			Name:        file.Dataset,
			Workspace:   file.Workspace,
			Framework:   file.Framework,
			Model:       file.Model,
			Lang:        file.Lang,
			TrainSize:   file.TrainSize,
			Seed:        file.Seed,
			LoadOptions: loader.LoadOptions{Query: file.Query},
		}
		for k, v := range file.Config {
			overrides[k] = v
		}
	}

	if f.dataset != "" {
		opts.Name = f.dataset
	}
	if f.workspace != "" {
		opts.Workspace = f.workspace
	}
	if f.framework != "" {
		opts.Framework = f.framework
	}
	if f.model != "" {
		opts.Model = f.model
	}
	if f.lang != "" {
		opts.Lang = f.lang
	}
	if f.query != "" {
		opts.LoadOptions.Query = f.query
	}
	if f.trainSize != nil {
		opts.TrainSize = f.trainSize
	}
	if f.seed != nil {
		opts.Seed = f.seed
	}
	for _, kv := range f.overrides {
		key, value, _ := strings.Cut(kv, "=")
		overrides[key] = overrideValue(value)
	}

	return opts, overrides, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func predict(trainer *core.Trainer, path string, asRecords bool, out io.Writer) error {
	texts, err := readLines(path)
	if err != nil {
		return fmt.Errorf("error reading texts to predict: %w", err)
	}

	bar := progressbar.NewOptions(len(texts),
		progressbar.OptionSetDescription("predicting"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	enc := json.NewEncoder(out)
	for start := 0; start < len(texts); start += predictBatchSize {
		batch := texts[start:min(start+predictBatchSize, len(texts))]

		preds, err := trainer.PredictBatch(batch, asRecords)
		if err != nil {
			return err
		}
		for _, p := range preds {
			var v any = p
			if asRecords {
				v = p.Record
			}
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
		_ = bar.Add(len(batch))
	}
	return nil
}

func main() {
	f := parseFlags()

	cfg, err := config.Parse[config.TrainerConfig]()
	if err != nil {
		log.Fatalf("%v", err)
	}

	opts, overrides, err := f.options()
	if err != nil {
		log.Fatalf("%v", err)
	}

	var l loader.Loader
	if cfg.APIURL != "" {
		slog.Info("loading datasets over http", "url", cfg.APIURL)
		l = loader.NewHTTPLoader(cfg.APIURL, cfg.APIKey)
	} else {
		l = loader.NewDBLoader(cmd.CreateDatabase(cfg.Database))
	}

	trainer, err := core.NewTrainer(context.Background(), l, cmd.AdapterLoaders(cfg.Python), opts)
	if err != nil {
		log.Fatalf("error creating trainer: %v", err)
	}
	defer trainer.Release()

	if len(overrides) > 0 {
		if err := trainer.UpdateConfig(overrides); err != nil {
			log.Fatalf("error updating config: %v", err)
		}
		slog.Info("updated trainer config", "keys", len(overrides))
	}

	if !f.skipTrain {
		if err := trainer.Train(f.output); err != nil {
			log.Fatalf("error training: %v", err)
		}
		slog.Info("training finished", "output", f.output)
	}

	if f.predict != "" {
		if err := predict(trainer, f.predict, f.asRecords, os.Stdout); err != nil {
			log.Fatalf("error predicting: %v", err)
		}
	}
}
