package records

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"
)

const DefaultSpacyLang = "en"

var (
	ErrInvalidTrainSize       = errors.New("invalid train size")
	ErrUnsupportedPreparation = errors.New("unsupported preparation")
	ErrNoAnnotatedRecords     = errors.New("dataset has no annotated records")
)

type PrepareOptions struct {
	Framework Framework
	TrainSize *float64
	Seed      *int64

	// Lang is the spaCy language code used for the blank pipeline. It is only
	// meaningful for the spacy framework.
	Lang string
}

type Span struct {
	Label string
	Start int
	End   int
}

// Example is one framework-formatted training example. Which fields are set
// depends on the framework and task of the prepared dataset.
type Example struct {
	Text string `json:",omitempty"`

	Label          int   `json:",omitempty"`
	BinarizedLabel []int `json:",omitempty"`

	Tokens []string `json:",omitempty"`
	Tags   []int    `json:",omitempty"`

	Cats  map[string]float64 `json:",omitempty"`
	Spans []Span             `json:",omitempty"`
}

type PreparedDataset struct {
	Framework  Framework
	Task       TaskType
	Lang       string `json:",omitempty"`
	MultiLabel bool

	// Labels is the label vocabulary. For token classification with
	// transformers it holds the BIO tag names, "O" first.
	Labels []string

	Train []Example
	Test  []Example `json:",omitempty"`
}

func (p *PreparedDataset) HasTestSplit() bool {
	return len(p.Test) > 0
}

func validateTrainSize(trainSize *float64) error {
	if trainSize == nil {
		return nil
	}
	if *trainSize <= 0 || *trainSize > 1 {
		return fmt.Errorf("%w: %v must be in (0, 1]", ErrInvalidTrainSize, *trainSize)
	}
	return nil
}

func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// splitIndices returns the positions that go to the train and test splits.
// Without a train size, or with a train size of 1, everything is train and the
// original order is kept.
func splitIndices(n int, trainSize *float64, seed *int64) ([]int, []int, error) {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	if trainSize == nil || *trainSize == 1 {
		return indices, nil, nil
	}

	rng := newRand(seed)
	rng.Shuffle(n, func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })

	trainCount := int(math.Floor(float64(n) * *trainSize))
	if trainCount == 0 {
		return nil, nil, fmt.Errorf("%w: %v leaves no training records out of %d", ErrInvalidTrainSize, *trainSize, n)
	}

	return indices[:trainCount], indices[trainCount:], nil
}

func pick(examples []Example, indices []int) []Example {
	if len(indices) == 0 {
		return nil
	}
	out := make([]Example, len(indices))
	for i, idx := range indices {
		out[i] = examples[idx]
	}
	return out
}

func sortedLabels(labelSets ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, set := range labelSets {
		for _, l := range set {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				out = append(out, l)
			}
		}
	}
	slices.Sort(out)
	return out
}

func (d *TextClassificationDataset) PrepareForTraining(opts PrepareOptions) (*PreparedDataset, error) {
	if err := validateTrainSize(opts.TrainSize); err != nil {
		return nil, err
	}

	switch opts.Framework {
	case Transformers, SetFit, Spacy:
	default:
		_, err := ParseFramework(string(opts.Framework))
		return nil, err
	}

	var annotated []*TextClassificationRecord
	var labelSets [][]string
	for _, r := range d.Items {
		if r.IsAnnotated() {
			annotated = append(annotated, r)
			labelSets = append(labelSets, r.Annotation)
		}
	}
	if len(annotated) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAnnotatedRecords, TextClassification)
	}

	multiLabel := annotated[0].MultiLabel
	labels := sortedLabels(labelSets...)
	labelIds := make(map[string]int, len(labels))
	for i, l := range labels {
		labelIds[l] = i
	}

	examples := make([]Example, len(annotated))
	for i, r := range annotated {
		ex := Example{Text: r.RecordText()}

		switch opts.Framework {
		case Spacy:
			ex.Cats = make(map[string]float64, len(labels))
			for _, l := range labels {
				ex.Cats[l] = 0
			}
			for _, l := range r.Annotation {
				ex.Cats[l] = 1
			}
		default:
			if multiLabel {
				ex.BinarizedLabel = make([]int, len(labels))
				for _, l := range r.Annotation {
					ex.BinarizedLabel[labelIds[l]] = 1
				}
			} else {
				ex.Label = labelIds[r.Annotation[0]]
			}
		}

		examples[i] = ex
	}

	train, test, err := splitIndices(len(examples), opts.TrainSize, opts.Seed)
	if err != nil {
		return nil, err
	}

	prepared := &PreparedDataset{
		Framework:  opts.Framework,
		Task:       TextClassification,
		MultiLabel: multiLabel,
		Labels:     labels,
		Train:      pick(examples, train),
		Test:       pick(examples, test),
	}
	if opts.Framework == Spacy {
		prepared.Lang = spacyLang(opts.Lang)
	}
	return prepared, nil
}

func (d *TokenClassificationDataset) PrepareForTraining(opts PrepareOptions) (*PreparedDataset, error) {
	if err := validateTrainSize(opts.TrainSize); err != nil {
		return nil, err
	}

	switch opts.Framework {
	case Transformers, Spacy:
	case SetFit:
		return nil, fmt.Errorf("%w: %s does not support %s", ErrUnsupportedPreparation, SetFit, TokenClassification)
	default:
		_, err := ParseFramework(string(opts.Framework))
		return nil, err
	}

	var annotated []*TokenClassificationRecord
	var labelSets [][]string
	for _, r := range d.Items {
		if r.IsAnnotated() {
			annotated = append(annotated, r)
			labelSets = append(labelSets, r.Labels())
		}
	}
	if len(annotated) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAnnotatedRecords, TokenClassification)
	}

	entityLabels := sortedLabels(labelSets...)

	var labels []string
	var tagIds map[string]int
	if opts.Framework == Transformers {
		labels = bioTags(entityLabels)
		tagIds = make(map[string]int, len(labels))
		for i, t := range labels {
			tagIds[t] = i
		}
	} else {
		labels = entityLabels
	}

	examples := make([]Example, len(annotated))
	for i, r := range annotated {
		switch opts.Framework {
		case Transformers:
			tags, err := BIOTags(r.Text, r.Tokens, r.Annotation)
			if err != nil {
				return nil, fmt.Errorf("error preparing record %s: %w", r.Id, err)
			}
			ids := make([]int, len(tags))
			for j, t := range tags {
				ids[j] = tagIds[t]
			}
			examples[i] = Example{Tokens: r.Tokens, Tags: ids}
		case Spacy:
			spans := make([]Span, len(r.Annotation))
			for j, e := range r.Annotation {
				spans[j] = Span{Label: e.Label, Start: e.Start, End: e.End}
			}
			examples[i] = Example{Text: r.Text, Spans: spans}
		}
	}

	train, test, err := splitIndices(len(examples), opts.TrainSize, opts.Seed)
	if err != nil {
		return nil, err
	}

	prepared := &PreparedDataset{
		Framework: opts.Framework,
		Task:      TokenClassification,
		Labels:    labels,
		Train:     pick(examples, train),
		Test:      pick(examples, test),
	}
	if opts.Framework == Spacy {
		prepared.Lang = spacyLang(opts.Lang)
	}
	return prepared, nil
}

func (d *Text2TextDataset) PrepareForTraining(opts PrepareOptions) (*PreparedDataset, error) {
	return nil, fmt.Errorf("%w: %s datasets cannot be prepared for %s", ErrUnsupportedPreparation, Text2Text, opts.Framework)
}

func spacyLang(lang string) string {
	if lang == "" {
		return DefaultSpacyLang
	}
	return lang
}
