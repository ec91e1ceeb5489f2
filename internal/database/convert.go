package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"argilla-trainer/internal/records"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func marshalJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

func unmarshalJSON(data datatypes.JSON, dest any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, dest)
}

func externalId(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}

// FromRecord converts a domain record into its row. Position and timestamps are
// left for the caller.
func FromRecord(datasetId uuid.UUID, rec records.Record) (*Record, error) {
	row := &Record{
		Id:        rec.RecordId(),
		DatasetId: datasetId,
		Status:    string(rec.RecordStatus()),
	}
	if row.Id == uuid.Nil {
		row.Id = uuid.New()
	}
	if row.Status == "" {
		row.Status = string(records.StatusDefault)
	}

	var err error
	if meta := rec.RecordMetadata(); meta != nil {
		if row.Metadata, err = marshalJSON(meta); err != nil {
			return nil, fmt.Errorf("error encoding metadata: %w", err)
		}
	}

	switch r := rec.(type) {
	case *records.TextClassificationRecord:
		row.ExternalId = externalId(r.ExternalId)
		row.Text = r.Text
		row.MultiLabel = r.MultiLabel
		if r.Inputs != nil {
			if row.Inputs, err = marshalJSON(r.Inputs); err != nil {
				return nil, fmt.Errorf("error encoding inputs: %w", err)
			}
		}
		if r.Annotation != nil {
			if row.Annotation, err = marshalJSON(r.Annotation); err != nil {
				return nil, fmt.Errorf("error encoding annotation: %w", err)
			}
		}
		if r.Prediction != nil {
			if row.Prediction, err = marshalJSON(r.Prediction); err != nil {
				return nil, fmt.Errorf("error encoding prediction: %w", err)
			}
		}
	case *records.TokenClassificationRecord:
		row.ExternalId = externalId(r.ExternalId)
		row.Text = r.Text
		if row.Tokens, err = marshalJSON(r.Tokens); err != nil {
			return nil, fmt.Errorf("error encoding tokens: %w", err)
		}
		if r.Annotation != nil {
			if row.Annotation, err = marshalJSON(r.Annotation); err != nil {
				return nil, fmt.Errorf("error encoding annotation: %w", err)
			}
		}
		if r.Prediction != nil {
			if row.Prediction, err = marshalJSON(r.Prediction); err != nil {
				return nil, fmt.Errorf("error encoding prediction: %w", err)
			}
		}
	case *records.Text2TextRecord:
		row.ExternalId = externalId(r.ExternalId)
		row.Text = r.Text
		if r.Annotation != "" {
			if row.Annotation, err = marshalJSON(r.Annotation); err != nil {
				return nil, fmt.Errorf("error encoding annotation: %w", err)
			}
		}
		if r.Prediction != nil {
			if row.Prediction, err = marshalJSON(r.Prediction); err != nil {
				return nil, fmt.Errorf("error encoding prediction: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported record type %T", rec)
	}

	return row, nil
}

func ToRecord(task records.TaskType, row *Record) (records.Record, error) {
	var metadata map[string]any
	if err := unmarshalJSON(row.Metadata, &metadata); err != nil {
		return nil, fmt.Errorf("invalid metadata JSON for record %s: %w", row.Id, err)
	}

	status := records.RecordStatus(row.Status)

	switch task {
	case records.TextClassification:
		rec := &records.TextClassificationRecord{
			Id:         row.Id,
			ExternalId: row.ExternalId.String,
			Text:       row.Text,
			MultiLabel: row.MultiLabel,
			Status:     status,
			Metadata:   metadata,
		}
		if err := unmarshalJSON(row.Inputs, &rec.Inputs); err != nil {
			return nil, fmt.Errorf("invalid inputs JSON for record %s: %w", row.Id, err)
		}
		if err := unmarshalJSON(row.Annotation, &rec.Annotation); err != nil {
			return nil, fmt.Errorf("invalid annotation JSON for record %s: %w", row.Id, err)
		}
		if err := unmarshalJSON(row.Prediction, &rec.Prediction); err != nil {
			return nil, fmt.Errorf("invalid prediction JSON for record %s: %w", row.Id, err)
		}
		return rec, nil

	case records.TokenClassification:
		rec := &records.TokenClassificationRecord{
			Id:         row.Id,
			ExternalId: row.ExternalId.String,
			Text:       row.Text,
			Status:     status,
			Metadata:   metadata,
		}
		if err := unmarshalJSON(row.Tokens, &rec.Tokens); err != nil {
			return nil, fmt.Errorf("invalid tokens JSON for record %s: %w", row.Id, err)
		}
		if err := unmarshalJSON(row.Annotation, &rec.Annotation); err != nil {
			return nil, fmt.Errorf("invalid annotation JSON for record %s: %w", row.Id, err)
		}
		if err := unmarshalJSON(row.Prediction, &rec.Prediction); err != nil {
			return nil, fmt.Errorf("invalid prediction JSON for record %s: %w", row.Id, err)
		}
		return rec, nil

	case records.Text2Text:
		rec := &records.Text2TextRecord{
			Id:         row.Id,
			ExternalId: row.ExternalId.String,
			Text:       row.Text,
			Status:     status,
			Metadata:   metadata,
		}
		if err := unmarshalJSON(row.Annotation, &rec.Annotation); err != nil {
			return nil, fmt.Errorf("invalid annotation JSON for record %s: %w", row.Id, err)
		}
		if err := unmarshalJSON(row.Prediction, &rec.Prediction); err != nil {
			return nil, fmt.Errorf("invalid prediction JSON for record %s: %w", row.Id, err)
		}
		return rec, nil

	default:
		_, err := records.ParseTaskType(string(task))
		return nil, err
	}
}

func stamp(row *Record, position int64, now time.Time) {
	row.Position = position
	row.CreationTime = now
	row.UpdateTime = now
}
