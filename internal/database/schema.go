package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Dataset struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;uniqueIndex:idx_datasets_workspace_name"`
	Workspace string    `gorm:"not null;uniqueIndex:idx_datasets_workspace_name"`
	Task      string    `gorm:"size:32;not null"`

	CreationTime time.Time

	Records []Record `gorm:"foreignKey:DatasetId;constraint:OnDelete:CASCADE"`
}

type Record struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DatasetId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	ExternalId sql.NullString `gorm:"index"`

	// Position keeps the insertion order of the records of a dataset.
	Position int64 `gorm:"not null;default:0"`

	Text       string
	Inputs     datatypes.JSON `gorm:"type:jsonb"`
	Tokens     datatypes.JSON `gorm:"type:jsonb"`
	MultiLabel bool           `gorm:"default:false"`

	Annotation datatypes.JSON `gorm:"type:jsonb"`
	Prediction datatypes.JSON `gorm:"type:jsonb"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`

	Status string `gorm:"size:20;not null"`

	CreationTime time.Time
	UpdateTime   time.Time
}

const (
	JobQueued    string = "QUEUED"
	JobRunning   string = "RUNNING"
	JobCompleted string = "COMPLETED"
	JobFailed    string = "FAILED"
)

type TrainingJob struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	DatasetName string `gorm:"not null"`
	Workspace   string
	Framework   string `gorm:"size:20;not null"`
	Model       string
	Lang        string
	TrainSize   sql.NullFloat64
	Seed        sql.NullInt64
	Query       string

	ConfigOverrides datatypes.JSON `gorm:"type:jsonb"`

	Status string `gorm:"size:20;not null"`
	Error  string

	// ModelPrefix is the object store prefix the trained model was uploaded to.
	ModelPrefix string

	CreationTime   time.Time
	StartTime      sql.NullTime
	CompletionTime sql.NullTime
}
