package records

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func textClassificationDataset(n int, multiLabel bool) *TextClassificationDataset {
	ds := &TextClassificationDataset{}
	for i := 0; i < n; i++ {
		annotation := []string{"neg"}
		if i%2 == 0 {
			annotation = []string{"pos"}
		}
		if multiLabel && i%3 == 0 {
			annotation = append(annotation, "neutral")
		}
		ds.Items = append(ds.Items, &TextClassificationRecord{
			Id:         uuid.New(),
			Text:       fmt.Sprintf("text %d", i),
			MultiLabel: multiLabel,
			Annotation: annotation,
			Status:     StatusValidated,
		})
	}
	return ds
}

func TestParseFramework(t *testing.T) {
	for _, f := range Frameworks() {
		parsed, err := ParseFramework(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFramework("not-a-framework")
	assert.ErrorIs(t, err, ErrInvalidFramework)
}

func TestPrepareTextClassification_NoSplit(t *testing.T) {
	ds := textClassificationDataset(4, false)
	ds.Items = append(ds.Items, &TextClassificationRecord{Id: uuid.New(), Text: "unlabeled"})

	prepared, err := ds.PrepareForTraining(PrepareOptions{Framework: Transformers})
	require.NoError(t, err)

	assert.Equal(t, []string{"neg", "pos"}, prepared.Labels)
	assert.False(t, prepared.HasTestSplit())
	require.Len(t, prepared.Train, 4)
	assert.Equal(t, "text 0", prepared.Train[0].Text)
	assert.Equal(t, 1, prepared.Train[0].Label)
	assert.Equal(t, 0, prepared.Train[1].Label)
	assert.Empty(t, prepared.Lang)
}

func TestPrepareTextClassification_Split(t *testing.T) {
	ds := textClassificationDataset(10, false)

	prepared, err := ds.PrepareForTraining(PrepareOptions{Framework: SetFit, TrainSize: ptr(0.8), Seed: ptr(int64(42))})
	require.NoError(t, err)
	assert.Len(t, prepared.Train, 8)
	assert.Len(t, prepared.Test, 2)

	again, err := ds.PrepareForTraining(PrepareOptions{Framework: SetFit, TrainSize: ptr(0.8), Seed: ptr(int64(42))})
	require.NoError(t, err)
	assert.Equal(t, prepared.Train, again.Train)
	assert.Equal(t, prepared.Test, again.Test)
}

func TestPrepareTextClassification_MultiLabel(t *testing.T) {
	ds := textClassificationDataset(3, true)

	prepared, err := ds.PrepareForTraining(PrepareOptions{Framework: Transformers})
	require.NoError(t, err)
	assert.True(t, prepared.MultiLabel)
	assert.Equal(t, []string{"neg", "neutral", "pos"}, prepared.Labels)
	assert.Equal(t, []int{0, 1, 1}, prepared.Train[0].BinarizedLabel)
	assert.Equal(t, []int{1, 0, 0}, prepared.Train[1].BinarizedLabel)
}

func TestPrepareTextClassification_Spacy(t *testing.T) {
	ds := textClassificationDataset(2, false)

	prepared, err := ds.PrepareForTraining(PrepareOptions{Framework: Spacy})
	require.NoError(t, err)
	assert.Equal(t, DefaultSpacyLang, prepared.Lang)
	assert.Equal(t, map[string]float64{"neg": 0, "pos": 1}, prepared.Train[0].Cats)

	prepared, err = ds.PrepareForTraining(PrepareOptions{Framework: Spacy, Lang: "es"})
	require.NoError(t, err)
	assert.Equal(t, "es", prepared.Lang)
}

func TestPrepare_InvalidTrainSize(t *testing.T) {
	ds := textClassificationDataset(4, false)

	for _, size := range []float64{0, -0.5, 1.5} {
		_, err := ds.PrepareForTraining(PrepareOptions{Framework: Transformers, TrainSize: ptr(size)})
		assert.ErrorIs(t, err, ErrInvalidTrainSize)
	}

	_, err := ds.PrepareForTraining(PrepareOptions{Framework: Transformers, TrainSize: ptr(0.1)})
	assert.ErrorIs(t, err, ErrInvalidTrainSize)

	prepared, err := ds.PrepareForTraining(PrepareOptions{Framework: Transformers, TrainSize: ptr(1.0)})
	require.NoError(t, err)
	assert.Len(t, prepared.Train, 4)
	assert.Empty(t, prepared.Test)
}

func TestPrepare_NoAnnotatedRecords(t *testing.T) {
	ds := &TextClassificationDataset{Items: []*TextClassificationRecord{
		{Id: uuid.New(), Text: "a"},
		{Id: uuid.New(), Text: "b", Annotation: []string{"x"}, Status: StatusDiscarded},
	}}

	_, err := ds.PrepareForTraining(PrepareOptions{Framework: Transformers})
	assert.ErrorIs(t, err, ErrNoAnnotatedRecords)
}

func tokenDataset() *TokenClassificationDataset {
	return &TokenClassificationDataset{Items: []*TokenClassificationRecord{
		{
			Id:     uuid.New(),
			Text:   "John Smith lives in New York",
			Tokens: []string{"John", "Smith", "lives", "in", "New", "York"},
			Annotation: []Entity{
				{Label: "PER", Start: 0, End: 10},
				{Label: "LOC", Start: 20, End: 28},
			},
			Status: StatusValidated,
		},
	}}
}

func TestPrepareTokenClassification_Transformers(t *testing.T) {
	prepared, err := tokenDataset().PrepareForTraining(PrepareOptions{Framework: Transformers})
	require.NoError(t, err)

	assert.Equal(t, []string{"O", "B-LOC", "I-LOC", "B-PER", "I-PER"}, prepared.Labels)
	require.Len(t, prepared.Train, 1)
	assert.Equal(t, []int{3, 4, 0, 0, 1, 2}, prepared.Train[0].Tags)
}

func TestPrepareTokenClassification_Spacy(t *testing.T) {
	prepared, err := tokenDataset().PrepareForTraining(PrepareOptions{Framework: Spacy})
	require.NoError(t, err)

	assert.Equal(t, []string{"LOC", "PER"}, prepared.Labels)
	assert.Equal(t, []Span{{Label: "PER", Start: 0, End: 10}, {Label: "LOC", Start: 20, End: 28}}, prepared.Train[0].Spans)
}

func TestPrepare_UnsupportedCombinations(t *testing.T) {
	_, err := tokenDataset().PrepareForTraining(PrepareOptions{Framework: SetFit})
	assert.ErrorIs(t, err, ErrUnsupportedPreparation)

	t2t := &Text2TextDataset{Items: []*Text2TextRecord{{Id: uuid.New(), Text: "a", Annotation: "b"}}}
	_, err = t2t.PrepareForTraining(PrepareOptions{Framework: Transformers})
	assert.ErrorIs(t, err, ErrUnsupportedPreparation)

	_, err = textClassificationDataset(2, false).PrepareForTraining(PrepareOptions{Framework: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidFramework)
}
