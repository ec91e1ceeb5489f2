package records

// Dataset is an ordered collection of records sharing one task type. The set of
// implementations is closed: TextClassificationDataset,
// TokenClassificationDataset and Text2TextDataset.
type Dataset interface {
	Task() TaskType

	Len() int

	Records() []Record

	PrepareForTraining(opts PrepareOptions) (*PreparedDataset, error)
}

type TextClassificationDataset struct {
	Items []*TextClassificationRecord
}

func (d *TextClassificationDataset) Task() TaskType { return TextClassification }

func (d *TextClassificationDataset) Len() int { return len(d.Items) }

func (d *TextClassificationDataset) Records() []Record {
	out := make([]Record, len(d.Items))
	for i, r := range d.Items {
		out[i] = r
	}
	return out
}

type TokenClassificationDataset struct {
	Items []*TokenClassificationRecord
}

func (d *TokenClassificationDataset) Task() TaskType { return TokenClassification }

func (d *TokenClassificationDataset) Len() int { return len(d.Items) }

func (d *TokenClassificationDataset) Records() []Record {
	out := make([]Record, len(d.Items))
	for i, r := range d.Items {
		out[i] = r
	}
	return out
}

type Text2TextDataset struct {
	Items []*Text2TextRecord
}

func (d *Text2TextDataset) Task() TaskType { return Text2Text }

func (d *Text2TextDataset) Len() int { return len(d.Items) }

func (d *Text2TextDataset) Records() []Record {
	out := make([]Record, len(d.Items))
	for i, r := range d.Items {
		out[i] = r
	}
	return out
}

// NewDataset builds the typed dataset for the given task out of generic
// records. Records of a different task are skipped.
func NewDataset(task TaskType, recs []Record) (Dataset, error) {
	switch task {
	case TextClassification:
		ds := &TextClassificationDataset{}
		for _, r := range recs {
			if rec, ok := r.(*TextClassificationRecord); ok {
				ds.Items = append(ds.Items, rec)
			}
		}
		return ds, nil
	case TokenClassification:
		ds := &TokenClassificationDataset{}
		for _, r := range recs {
			if rec, ok := r.(*TokenClassificationRecord); ok {
				ds.Items = append(ds.Items, rec)
			}
		}
		return ds, nil
	case Text2Text:
		ds := &Text2TextDataset{}
		for _, r := range recs {
			if rec, ok := r.(*Text2TextRecord); ok {
				ds.Items = append(ds.Items, rec)
			}
		}
		return ds, nil
	default:
		_, err := ParseTaskType(string(task))
		return nil, err
	}
}
