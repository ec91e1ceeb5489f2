package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateDatasetRequest struct {
	Name      string
	Workspace string
	Task      string
}

type Dataset struct {
	Id        uuid.UUID
	Name      string
	Workspace string
	Task      string

	CreationTime time.Time
}

// RecordsResponse carries the records of one dataset. Records is a JSON array
// whose element type is determined by Task.
type RecordsResponse struct {
	Task    string
	Records json.RawMessage
}

// BulkRecordsRequest carries records to create or upsert. Records is a JSON
// array whose element type is determined by the task of the target dataset.
type BulkRecordsRequest struct {
	Workspace string
	Records   json.RawMessage
}

type BulkRecordsResponse struct {
	Processed int
	Updated   []uuid.UUID
	Records   json.RawMessage `json:"Records,omitempty"`
}

type CreateTrainingRequest struct {
	DatasetName string
	Workspace   string
	Framework   string
	Model       string `json:"Model,omitempty"`
	Lang        string `json:"Lang,omitempty"`
	TrainSize   *float64
	Seed        *int64
	Query       string         `json:"Query,omitempty"`
	Config      map[string]any `json:"Config,omitempty"`
}

type CreateTrainingResponse struct {
	JobId uuid.UUID
}

type TrainingJob struct {
	Id          uuid.UUID
	DatasetName string
	Workspace   string
	Framework   string
	Model       string
	Status      string
	Error       string `json:"Error,omitempty"`
	ModelPrefix string `json:"ModelPrefix,omitempty"`

	CreationTime   time.Time
	StartTime      *time.Time `json:"StartTime,omitempty"`
	CompletionTime *time.Time `json:"CompletionTime,omitempty"`
}
