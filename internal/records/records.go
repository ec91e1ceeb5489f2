package records

import (
	"github.com/google/uuid"
)

type RecordStatus string

const (
	StatusDefault   RecordStatus = "Default"
	StatusValidated RecordStatus = "Validated"
	StatusDiscarded RecordStatus = "Discarded"
)

type Record interface {
	Task() TaskType

	RecordId() uuid.UUID

	RecordText() string

	RecordStatus() RecordStatus

	RecordMetadata() map[string]any

	// Labels returns the annotated labels, one per annotation unit.
	Labels() []string

	IsAnnotated() bool
}

type ClassPrediction struct {
	Label string
	Score float64
}

// Entity is a labeled character span of a record text.
type Entity struct {
	Label string
	Start int
	End   int
	Score float64 `json:",omitempty"`
}

type TextClassificationRecord struct {
	Id         uuid.UUID
	ExternalId string            `json:",omitempty"`
	Text       string            `json:",omitempty"`
	Inputs     map[string]string `json:",omitempty"`
	MultiLabel bool

	Annotation []string          `json:",omitempty"`
	Prediction []ClassPrediction `json:",omitempty"`

	Status   RecordStatus
	Metadata map[string]any `json:",omitempty"`
}

func (r *TextClassificationRecord) Task() TaskType { return TextClassification }

func (r *TextClassificationRecord) RecordId() uuid.UUID { return r.Id }

func (r *TextClassificationRecord) RecordStatus() RecordStatus { return r.Status }

func (r *TextClassificationRecord) RecordMetadata() map[string]any { return r.Metadata }

// RecordText returns Text, or the inputs joined in key order when the record
// only carries named inputs.
func (r *TextClassificationRecord) RecordText() string {
	if r.Text != "" || len(r.Inputs) == 0 {
		return r.Text
	}
	return joinInputs(r.Inputs)
}

func (r *TextClassificationRecord) Labels() []string {
	return r.Annotation
}

func (r *TextClassificationRecord) IsAnnotated() bool {
	return len(r.Annotation) > 0 && r.Status != StatusDiscarded
}

type TokenClassificationRecord struct {
	Id         uuid.UUID
	ExternalId string `json:",omitempty"`
	Text       string
	Tokens     []string

	Annotation []Entity `json:",omitempty"`
	Prediction []Entity `json:",omitempty"`

	Status   RecordStatus
	Metadata map[string]any `json:",omitempty"`
}

func (r *TokenClassificationRecord) Task() TaskType { return TokenClassification }

func (r *TokenClassificationRecord) RecordId() uuid.UUID { return r.Id }

func (r *TokenClassificationRecord) RecordText() string { return r.Text }

func (r *TokenClassificationRecord) RecordStatus() RecordStatus { return r.Status }

func (r *TokenClassificationRecord) RecordMetadata() map[string]any { return r.Metadata }

func (r *TokenClassificationRecord) Labels() []string {
	labels := make([]string, 0, len(r.Annotation))
	for _, e := range r.Annotation {
		labels = append(labels, e.Label)
	}
	return labels
}

// A token classification record with an empty annotation list still counts as
// annotated once validated, since "no entities" is a valid label.
func (r *TokenClassificationRecord) IsAnnotated() bool {
	if r.Status == StatusDiscarded {
		return false
	}
	return len(r.Annotation) > 0 || r.Status == StatusValidated
}

type Text2TextRecord struct {
	Id         uuid.UUID
	ExternalId string `json:",omitempty"`
	Text       string

	Annotation string   `json:",omitempty"`
	Prediction []string `json:",omitempty"`

	Status   RecordStatus
	Metadata map[string]any `json:",omitempty"`
}

func (r *Text2TextRecord) Task() TaskType { return Text2Text }

func (r *Text2TextRecord) RecordId() uuid.UUID { return r.Id }

func (r *Text2TextRecord) RecordText() string { return r.Text }

func (r *Text2TextRecord) RecordStatus() RecordStatus { return r.Status }

func (r *Text2TextRecord) RecordMetadata() map[string]any { return r.Metadata }

func (r *Text2TextRecord) Labels() []string {
	if r.Annotation == "" {
		return nil
	}
	return []string{r.Annotation}
}

func (r *Text2TextRecord) IsAnnotated() bool {
	return r.Annotation != "" && r.Status != StatusDiscarded
}
