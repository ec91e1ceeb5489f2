package loader

import (
	"context"
	"errors"

	"argilla-trainer/internal/records"

	"github.com/google/uuid"
)

var ErrDatasetNotFound = errors.New("dataset not found")

type LoadOptions struct {
	Workspace string `schema:"workspace"`

	// Limit caps the number of returned records, 0 means no limit.
	Limit int `schema:"limit"`

	// Query is a filter expression, see ParseQuery.
	Query string `schema:"query"`

	IDs []uuid.UUID `schema:"ids"`
}

// Loader fetches a dataset by name. The concrete type of the returned dataset
// encodes the task of the dataset.
type Loader interface {
	Load(ctx context.Context, name string, opts LoadOptions) (records.Dataset, error)
}

// applyOptions filters, then truncates, the given records in order.
func applyOptions(recs []records.Record, opts LoadOptions) ([]records.Record, error) {
	var filter Filter
	if opts.Query != "" {
		f, err := ParseQuery(opts.Query)
		if err != nil {
			return nil, err
		}
		filter = f
	}

	var ids map[uuid.UUID]struct{}
	if len(opts.IDs) > 0 {
		ids = make(map[uuid.UUID]struct{}, len(opts.IDs))
		for _, id := range opts.IDs {
			ids[id] = struct{}{}
		}
	}

	out := make([]records.Record, 0, len(recs))
	for _, r := range recs {
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
		if ids != nil {
			if _, ok := ids[r.RecordId()]; !ok {
				continue
			}
		}
		if filter != nil && !filter.Matches(r) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
