package migration_0

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Snapshot of the initial schema, kept separate from the live models so that
// later changes to them do not alter this migration.

type Dataset struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null;uniqueIndex:idx_datasets_workspace_name"`
	Workspace    string    `gorm:"not null;uniqueIndex:idx_datasets_workspace_name"`
	Task         string    `gorm:"size:32;not null"`
	CreationTime time.Time

	Records []Record `gorm:"foreignKey:DatasetId;constraint:OnDelete:CASCADE"`
}

type Record struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DatasetId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	ExternalId   sql.NullString `gorm:"index"`
	Position     int64          `gorm:"not null;default:0"`
	Text         string
	Inputs       datatypes.JSON `gorm:"type:jsonb"`
	Tokens       datatypes.JSON `gorm:"type:jsonb"`
	MultiLabel   bool           `gorm:"default:false"`
	Annotation   datatypes.JSON `gorm:"type:jsonb"`
	Prediction   datatypes.JSON `gorm:"type:jsonb"`
	Metadata     datatypes.JSON `gorm:"type:jsonb"`
	Status       string         `gorm:"size:20;not null"`
	CreationTime time.Time
	UpdateTime   time.Time
}

type TrainingJob struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DatasetName     string    `gorm:"not null"`
	Workspace       string
	Framework       string `gorm:"size:20;not null"`
	Model           string
	Lang            string
	TrainSize       sql.NullFloat64
	Seed            sql.NullInt64
	Query           string
	ConfigOverrides datatypes.JSON `gorm:"type:jsonb"`
	Status          string         `gorm:"size:20;not null"`
	Error           string
	ModelPrefix     string
	CreationTime    time.Time
	StartTime       sql.NullTime
	CompletionTime  sql.NullTime
}

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Dataset{}, &Record{}, &TrainingJob{})
}

func Rollback(db *gorm.DB) error {
	return db.Migrator().DropTable(&TrainingJob{}, &Record{}, &Dataset{})
}
