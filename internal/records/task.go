package records

import (
	"errors"
	"fmt"
)

// TaskType is the annotation schema of a dataset.
type TaskType string

const (
	TextClassification  TaskType = "TextClassification"
	TokenClassification TaskType = "TokenClassification"
	Text2Text           TaskType = "Text2Text"
)

var ErrInvalidTaskType = errors.New("invalid task type")

func ParseTaskType(s string) (TaskType, error) {
	switch TaskType(s) {
	case TextClassification, TokenClassification, Text2Text:
		return TaskType(s), nil
	default:
		return "", fmt.Errorf("%w: '%s' is not one of %s, %s, %s", ErrInvalidTaskType, s, TextClassification, TokenClassification, Text2Text)
	}
}

// Framework is one of the external training backends.
type Framework string

const (
	Transformers Framework = "transformers"
	SetFit       Framework = "setfit"
	Spacy        Framework = "spacy"
)

var ErrInvalidFramework = errors.New("invalid framework")

func Frameworks() []Framework {
	return []Framework{Transformers, SetFit, Spacy}
}

func ParseFramework(s string) (Framework, error) {
	switch Framework(s) {
	case Transformers, SetFit, Spacy:
		return Framework(s), nil
	default:
		return "", fmt.Errorf("%w: '%s' is not a valid framework, expected one of %v", ErrInvalidFramework, s, Frameworks())
	}
}
