package loader

import (
	"math"
	"testing"

	"argilla-trainer/internal/records"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery_SimpleFilter(t *testing.T) {
	filter, err := ParseQuery(`text CONTAINS "value"`)
	require.NoError(t, err)
	assert.Equal(t, &SubstringFilter{field: "text", substr: "value"}, filter)
}

func TestParseQuery_MetadataPath(t *testing.T) {
	filter, err := ParseQuery(`metadata.source = "web"`)
	require.NoError(t, err)
	assert.Equal(t, &StringEqFilter{field: "metadata.source", value: "web"}, filter)
}

func TestParseQuery_ComplexExpression(t *testing.T) {
	query := `text CONTAINS "a" AND (status = "Validated" OR NOT COUNT label > 4)`
	expected := &AndFilter{
		filters: []Filter{
			&SubstringFilter{field: "text", substr: "a"},
			&OrFilter{
				filters: []Filter{
					&StringEqFilter{field: "status", value: "Validated"},
					&NotFilter{
						filter: &CountFilter{field: "label", min: 4, max: math.MaxInt},
					},
				},
			},
		},
	}

	filter, err := ParseQuery(query)
	require.NoError(t, err)
	assert.Equal(t, expected, filter)
}

func TestParseQuery_CountFilter(t *testing.T) {
	filter, err := ParseQuery(`COUNT label < 10`)
	require.NoError(t, err)
	assert.Equal(t, &CountFilter{field: "label", min: -1, max: 10}, filter)
}

func TestParseQuery_InvalidQuery(t *testing.T) {
	_, err := ParseQuery(`text CONTAINS`)
	assert.Error(t, err)

	_, err = ParseQuery(`COUNT label = "x"`)
	assert.Error(t, err)

	_, err = ParseQuery(`text > 3`)
	assert.Error(t, err)
}

func TestApplyOptions(t *testing.T) {
	id := uuid.New()
	recs := []records.Record{
		&records.TextClassificationRecord{Id: uuid.New(), Text: "good movie", Annotation: []string{"pos"}, Status: records.StatusValidated, Metadata: map[string]any{"source": "imdb"}},
		&records.TextClassificationRecord{Id: id, Text: "bad movie", Annotation: []string{"neg"}, Status: records.StatusDefault},
		&records.TextClassificationRecord{Id: uuid.New(), Text: "a book", Status: records.StatusDefault, Metadata: map[string]any{"source": "goodreads"}},
	}

	texts := func(rs []records.Record) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.RecordText())
		}
		return out
	}

	out, err := applyOptions(recs, LoadOptions{})
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = applyOptions(recs, LoadOptions{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"good movie"}, texts(out))

	out, err = applyOptions(recs, LoadOptions{Query: `text CONTAINS "movie" AND NOT label = "pos"`})
	require.NoError(t, err)
	assert.Equal(t, []string{"bad movie"}, texts(out))

	out, err = applyOptions(recs, LoadOptions{Query: `metadata.source = "goodreads" OR COUNT label = 1`, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"good movie", "bad movie"}, texts(out))

	out, err = applyOptions(recs, LoadOptions{IDs: []uuid.UUID{id}})
	require.NoError(t, err)
	assert.Equal(t, []string{"bad movie"}, texts(out))

	_, err = applyOptions(recs, LoadOptions{Query: `text CONTAINS`})
	assert.Error(t, err)
}
