package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"argilla-trainer/internal/records"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidRecord = errors.New("invalid record")

const bulkBatchSize = 500

type BulkResult struct {
	Records []records.Record

	// Updated holds the ids of records that already existed.
	Updated []uuid.UUID
}

func validateRecord(task records.TaskType, idx int, rec records.Record) error {
	if rec.Task() != task {
		return fmt.Errorf("%w: item %d has task %s, dataset task is %s", ErrInvalidRecord, idx, rec.Task(), task)
	}

	switch r := rec.(type) {
	case *records.TextClassificationRecord:
		if r.Text == "" && len(r.Inputs) == 0 {
			return fmt.Errorf("%w: item %d has neither text nor inputs", ErrInvalidRecord, idx)
		}
		if !r.MultiLabel && len(r.Annotation) > 1 {
			return fmt.Errorf("%w: item %d is single label but has %d annotated labels", ErrInvalidRecord, idx, len(r.Annotation))
		}
	case *records.TokenClassificationRecord:
		if r.Text == "" || len(r.Tokens) == 0 {
			return fmt.Errorf("%w: item %d must have text and tokens", ErrInvalidRecord, idx)
		}
		for _, ents := range [][]records.Entity{r.Annotation, r.Prediction} {
			for _, e := range ents {
				if e.Start < 0 || e.End <= e.Start || e.End > len(r.Text) {
					return fmt.Errorf("%w: item %d has entity %s with span [%d, %d) outside of text", ErrInvalidRecord, idx, e.Label, e.Start, e.End)
				}
			}
		}
	case *records.Text2TextRecord:
		if r.Text == "" {
			return fmt.Errorf("%w: item %d has no text", ErrInvalidRecord, idx)
		}
	}

	switch rec.RecordStatus() {
	case "", records.StatusDefault, records.StatusValidated, records.StatusDiscarded:
	default:
		return fmt.Errorf("%w: item %d has invalid status '%s'", ErrInvalidRecord, idx, rec.RecordStatus())
	}

	return nil
}

func nextPosition(tx *gorm.DB, datasetId uuid.UUID) (int64, error) {
	var maxPos sql.NullInt64
	if err := tx.Model(&Record{}).Where("dataset_id = ?", datasetId).Select("MAX(position)").Row().Scan(&maxPos); err != nil {
		return 0, fmt.Errorf("error getting max record position: %w", err)
	}
	if !maxPos.Valid {
		return 0, nil
	}
	return maxPos.Int64 + 1, nil
}

func toRows(dataset *Dataset, items []records.Record) ([]*Record, error) {
	task := records.TaskType(dataset.Task)
	rows := make([]*Record, 0, len(items))
	for i, item := range items {
		if err := validateRecord(task, i, item); err != nil {
			return nil, err
		}
		row, err := FromRecord(dataset.Id, item)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidRecord, i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CreateRecordsBulk validates and inserts all items in a single transaction.
// Either every item is created or none is.
func CreateRecordsBulk(ctx context.Context, db *gorm.DB, dataset *Dataset, items []records.Record) (*BulkResult, error) {
	rows, err := toRows(dataset, items)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &BulkResult{}, nil
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pos, err := nextPosition(tx, dataset.Id)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		for i, row := range rows {
			stamp(row, pos+int64(i), now)
		}
		if err := tx.CreateInBatches(rows, bulkBatchSize).Error; err != nil {
			return fmt.Errorf("error inserting records: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rowsToResult(dataset, rows, nil)
}

func findExisting(tx *gorm.DB, datasetId uuid.UUID, row *Record) (*Record, error) {
	var existing Record
	var err error
	if row.ExternalId.Valid {
		err = tx.Where("dataset_id = ? AND (id = ? OR external_id = ?)", datasetId, row.Id, row.ExternalId.String).First(&existing).Error
	} else {
		err = tx.Where("dataset_id = ? AND id = ?", datasetId, row.Id).First(&existing).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error looking up record %s: %w", row.Id, err)
	}
	return &existing, nil
}

// UpsertRecordsBulk inserts new items and updates items matching an existing
// record by id or external id. On update the annotation, prediction and
// metadata are only replaced when the item provides them.
func UpsertRecordsBulk(ctx context.Context, db *gorm.DB, dataset *Dataset, items []records.Record) (*BulkResult, error) {
	rows, err := toRows(dataset, items)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &BulkResult{}, nil
	}

	var updated []uuid.UUID

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pos, err := nextPosition(tx, dataset.Id)
		if err != nil {
			return err
		}
		now := time.Now().UTC()

		for i, row := range rows {
			existing, err := findExisting(tx, dataset.Id, row)
			if err != nil {
				return err
			}

			if existing == nil {
				stamp(row, pos, now)
				pos++
				if err := tx.Create(row).Error; err != nil {
					return fmt.Errorf("error inserting record %d: %w", i, err)
				}
				continue
			}

			updates := map[string]any{"update_time": now}
			if items[i].RecordStatus() != "" {
				updates["status"] = row.Status
			}
			if row.Annotation != nil {
				updates["annotation"] = row.Annotation
			}
			if row.Prediction != nil {
				updates["prediction"] = row.Prediction
			}
			if row.Metadata != nil {
				updates["metadata"] = row.Metadata
			}
			if err := tx.Model(&Record{Id: existing.Id}).Updates(updates).Error; err != nil {
				return fmt.Errorf("error updating record %s: %w", existing.Id, err)
			}

			*row = Record{}
			if err := tx.First(row, "id = ?", existing.Id).Error; err != nil {
				return fmt.Errorf("error reloading record %s: %w", existing.Id, err)
			}
			updated = append(updated, existing.Id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rowsToResult(dataset, rows, updated)
}

func rowsToResult(dataset *Dataset, rows []*Record, updated []uuid.UUID) (*BulkResult, error) {
	result := &BulkResult{Records: make([]records.Record, 0, len(rows)), Updated: updated}
	for _, row := range rows {
		rec, err := ToRecord(records.TaskType(dataset.Task), row)
		if err != nil {
			return nil, err
		}
		result.Records = append(result.Records, rec)
	}
	return result, nil
}
