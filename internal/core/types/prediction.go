package types

import (
	"argilla-trainer/internal/records"

	"github.com/google/uuid"
)

// Prediction is the output of an adapter for one input text. Record is only set
// when the caller asked for platform records.
type Prediction struct {
	Text     string
	Labels   []records.ClassPrediction `json:",omitempty"`
	Tokens   []string                  `json:",omitempty"`
	Entities []records.Entity          `json:",omitempty"`

	Record records.Record `json:"-"`
}

// AsRecord wraps the prediction into a record of the given task.
func (p Prediction) AsRecord(task records.TaskType, multiLabel bool) records.Record {
	switch task {
	case records.TextClassification:
		return &records.TextClassificationRecord{
			Id:         uuid.New(),
			Text:       p.Text,
			MultiLabel: multiLabel,
			Prediction: p.Labels,
			Status:     records.StatusDefault,
		}
	case records.TokenClassification:
		return &records.TokenClassificationRecord{
			Id:         uuid.New(),
			Text:       p.Text,
			Tokens:     p.Tokens,
			Prediction: p.Entities,
			Status:     records.StatusDefault,
		}
	default:
		return nil
	}
}
