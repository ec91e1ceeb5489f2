package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"argilla-trainer/internal/records"
	"argilla-trainer/pkg/api"

	"github.com/go-resty/resty/v2"
)

const defaultHTTPTimeout = 60 * time.Second

// HTTPLoader reads datasets through the records endpoint of the REST api.
type HTTPLoader struct {
	client *resty.Client
}

func NewHTTPLoader(baseURL, apiKey string) *HTTPLoader {
	client := resty.New().SetBaseURL(baseURL).SetTimeout(defaultHTTPTimeout)
	if apiKey != "" {
		client.SetHeader("X-Api-Key", apiKey)
	}
	return &HTTPLoader{client: client}
}

func (opts LoadOptions) queryParams() url.Values {
	params := url.Values{}
	if opts.Workspace != "" {
		params.Set("workspace", opts.Workspace)
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Query != "" {
		params.Set("query", opts.Query)
	}
	for _, id := range opts.IDs {
		params.Add("ids", id.String())
	}
	return params
}

func (l *HTTPLoader) Load(ctx context.Context, name string, opts LoadOptions) (records.Dataset, error) {
	res, err := l.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("name", name).
		SetQueryParamsFromValues(opts.queryParams()).
		Get("/datasets/{name}/records")
	if err != nil {
		return nil, fmt.Errorf("error requesting dataset '%s': %w", name, err)
	}

	if res.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: '%s' in workspace '%s'", ErrDatasetNotFound, name, opts.Workspace)
	}
	if !res.IsSuccess() {
		slog.Error("records endpoint returned error", "dataset", name, "status_code", res.StatusCode(), "body", res.String())
		return nil, fmt.Errorf("error loading dataset '%s': status %d", name, res.StatusCode())
	}

	var body api.RecordsResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return nil, fmt.Errorf("error parsing records response: %w", err)
	}

	task, err := records.ParseTaskType(body.Task)
	if err != nil {
		return nil, err
	}

	recs, err := records.DecodeRecords(task, body.Records)
	if err != nil {
		return nil, err
	}

	return records.NewDataset(task, recs)
}
