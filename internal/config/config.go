package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

type DatabaseConfig struct {
	Dialect string `env:"DB_DIALECT" envDefault:"sqlite"`
	DSN     string `env:"DATABASE_URL" envDefault:"./data/trainer.db"`
}

type S3Config struct {
	Endpoint        string `env:"S3_ENDPOINT_URL"`
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

type StorageConfig struct {
	// Type is either "local" or "s3".
	Type        string `env:"STORAGE_TYPE" envDefault:"local"`
	LocalDir    string `env:"STORAGE_DIR" envDefault:"./data/storage"`
	ModelBucket string `env:"MODEL_BUCKET_NAME" envDefault:"models"`
	S3          S3Config
}

type PythonConfig struct {
	Executable   string `env:"PYTHON_EXECUTABLE" envDefault:"python3"`
	PluginScript string `env:"PLUGIN_SCRIPT" envDefault:"plugin/plugin-python/plugin.py"`

	EnableMPSFallback bool `env:"ENABLE_MPS_FALLBACK" envDefault:"false"`
	// NumThreads of 0 uses the number of physical cores.
	NumThreads int `env:"NUM_THREADS" envDefault:"0"`
}

type APIConfig struct {
	Database       DatabaseConfig
	RabbitMQURL    string   `env:"RABBITMQ_URL,notEmpty,required"`
	Port           int      `env:"API_PORT" envDefault:"8001"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type WorkerConfig struct {
	Database    DatabaseConfig
	Storage     StorageConfig
	Python      PythonConfig
	RabbitMQURL string `env:"RABBITMQ_URL,notEmpty,required"`
	WorkDir     string `env:"WORK_DIR" envDefault:""`
	Concurrency int    `env:"WORKER_CONCURRENCY" envDefault:"1"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9090"`
}

// LocalConfig runs the api and a worker in one process without a broker.
type LocalConfig struct {
	Root        string `env:"ROOT" envDefault:"./argilla-trainer"`
	Port        int    `env:"PORT" envDefault:"3001"`
	Python      PythonConfig
	ModelBucket string `env:"MODEL_BUCKET_NAME" envDefault:"models"`
}

type TrainerConfig struct {
	Database DatabaseConfig
	Python   PythonConfig
	APIURL   string `env:"TRAINER_API_URL"`
	APIKey   string `env:"TRAINER_API_KEY"`
}

func Parse[T any]() (T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return cfg, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

// TrainingFile describes one training run in yaml.
type TrainingFile struct {
	Dataset   string         `yaml:"dataset"`
	Workspace string         `yaml:"workspace"`
	Framework string         `yaml:"framework"`
	Model     string         `yaml:"model,omitempty"`
	Lang      string         `yaml:"lang,omitempty"`
	TrainSize *float64       `yaml:"train_size,omitempty"`
	Seed      *int64         `yaml:"seed,omitempty"`
	Query     string         `yaml:"query,omitempty"`
	Config    map[string]any `yaml:"config,omitempty"`
}

func LoadTrainingFile(path string) (*TrainingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading training file %s: %w", path, err)
	}

	var file TrainingFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing training file %s: %w", path, err)
	}

	for key, value := range file.Config {
		file.Config[key] = normalizeYAML(value)
	}

	return &file, nil
}

// normalizeYAML converts the map[interface{}]interface{} values yaml.v2 yields
// for nested mappings into map[string]any so they can be sent as json.
func normalizeYAML(value any) any {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeYAML(item)
		}
		return out
	case []interface{}:
		for i, item := range v {
			v[i] = normalizeYAML(item)
		}
		return v
	default:
		return v
	}
}
