package records

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const OutsideTag = "O"

var ErrTokenMismatch = errors.New("tokens do not match record text")

// TokenOffsets locates each token in text, in order, and returns its
// [start, end) character offsets.
func TokenOffsets(text string, tokens []string) ([][2]int, error) {
	offsets := make([][2]int, len(tokens))
	cursor := 0
	for i, tok := range tokens {
		idx := strings.Index(text[cursor:], tok)
		if idx < 0 {
			return nil, fmt.Errorf("%w: token %d '%s' not found after offset %d", ErrTokenMismatch, i, tok, cursor)
		}
		start := cursor + idx
		offsets[i] = [2]int{start, start + len(tok)}
		cursor = start + len(tok)
	}
	return offsets, nil
}

// BIOTags converts character level entity spans into one BIO tag per token.
func BIOTags(text string, tokens []string, entities []Entity) ([]string, error) {
	offsets, err := TokenOffsets(text, tokens)
	if err != nil {
		return nil, err
	}

	tags := make([]string, len(tokens))
	for i, off := range offsets {
		tags[i] = OutsideTag
		for _, e := range entities {
			if off[0] == e.Start {
				tags[i] = "B-" + e.Label
				break
			}
			if off[0] > e.Start && off[0] < e.End {
				tags[i] = "I-" + e.Label
				break
			}
		}
	}
	return tags, nil
}

// EntitiesFromBIO is the inverse of BIOTags. Tags that continue no open entity
// are dropped.
func EntitiesFromBIO(text string, tokens []string, tags []string) ([]Entity, error) {
	if len(tokens) != len(tags) {
		return nil, fmt.Errorf("%w: %d tokens but %d tags", ErrTokenMismatch, len(tokens), len(tags))
	}

	offsets, err := TokenOffsets(text, tokens)
	if err != nil {
		return nil, err
	}

	var entities []Entity
	var current *Entity
	for i, tag := range tags {
		switch {
		case strings.HasPrefix(tag, "B-"):
			if current != nil {
				entities = append(entities, *current)
			}
			current = &Entity{Label: tag[2:], Start: offsets[i][0], End: offsets[i][1]}
		case strings.HasPrefix(tag, "I-") && current != nil && current.Label == tag[2:]:
			current.End = offsets[i][1]
		default:
			if current != nil {
				entities = append(entities, *current)
				current = nil
			}
		}
	}
	if current != nil {
		entities = append(entities, *current)
	}
	return entities, nil
}

func bioTags(labels []string) []string {
	tags := make([]string, 0, 2*len(labels)+1)
	tags = append(tags, OutsideTag)
	for _, l := range labels {
		tags = append(tags, "B-"+l, "I-"+l)
	}
	return tags
}

func joinInputs(inputs map[string]string) string {
	keys := make([]string, 0, len(inputs))
	for k := range inputs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = inputs[k]
	}
	return strings.Join(parts, "\n")
}
