package records

import (
	"encoding/json"
	"fmt"
)

func decodeAll[T Record](data []byte) ([]Record, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out, nil
}

// DecodeRecords decodes a JSON array of records of the given task.
func DecodeRecords(task TaskType, data []byte) ([]Record, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var (
		recs []Record
		err  error
	)
	switch task {
	case TextClassification:
		recs, err = decodeAll[*TextClassificationRecord](data)
	case TokenClassification:
		recs, err = decodeAll[*TokenClassificationRecord](data)
	case Text2Text:
		recs, err = decodeAll[*Text2TextRecord](data)
	default:
		_, err = ParseTaskType(string(task))
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s records: %w", task, err)
	}
	return recs, nil
}
