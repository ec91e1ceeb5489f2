package loader

import (
	"context"
	"errors"
	"fmt"

	"argilla-trainer/internal/database"
	"argilla-trainer/internal/records"

	"gorm.io/gorm"
)

// DBLoader reads datasets directly from the platform database.
type DBLoader struct {
	db *gorm.DB
}

func NewDBLoader(db *gorm.DB) *DBLoader {
	return &DBLoader{db: db}
}

func (l *DBLoader) Load(ctx context.Context, name string, opts LoadOptions) (records.Dataset, error) {
	dataset, err := database.GetDataset(ctx, l.db, opts.Workspace, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: '%s' in workspace '%s'", ErrDatasetNotFound, name, opts.Workspace)
		}
		return nil, fmt.Errorf("error loading dataset '%s': %w", name, err)
	}

	// Filters are evaluated in memory, so the limit can only be pushed down to
	// the database when there are none.
	dbLimit := 0
	if opts.Query == "" && len(opts.IDs) == 0 {
		dbLimit = opts.Limit
	}

	recs, err := database.ListRecords(ctx, l.db, dataset, dbLimit)
	if err != nil {
		return nil, err
	}

	recs, err = applyOptions(recs, opts)
	if err != nil {
		return nil, err
	}

	return records.NewDataset(records.TaskType(dataset.Task), recs)
}
