//go:build integration

package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"argilla-trainer/internal/core/types"
	"argilla-trainer/internal/records"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// keywordAdapter predicts the label of the first training example that shares
// a word with the input text.
type keywordAdapter struct {
	cfg      types.AdapterConfig
	keywords map[string]string
}

func newKeywordAdapter(cfg types.AdapterConfig) (types.Adapter, error) {
	return &keywordAdapter{cfg: cfg, keywords: map[string]string{}}, nil
}

func (a *keywordAdapter) Train(outputDir string) error {
	labels := a.cfg.Dataset.Labels
	for _, ex := range a.cfg.Dataset.Train {
		if ex.Label < 0 || ex.Label >= len(labels) {
			continue
		}
		for _, word := range strings.Fields(ex.Text) {
			a.keywords[word] = labels[ex.Label]
		}
	}
	if outputDir == "" {
		return nil
	}
	return a.Save(outputDir)
}

func (a *keywordAdapter) Save(outputDir string) error {
	data, err := json.Marshal(a.keywords)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, "keywords.json"), data, 0o644)
}

func (a *keywordAdapter) Predict(text string, asRecords bool) ([]types.Prediction, error) {
	return a.PredictBatch([]string{text}, asRecords)
}

func (a *keywordAdapter) PredictBatch(texts []string, asRecords bool) ([]types.Prediction, error) {
	out := make([]types.Prediction, len(texts))
	for i, text := range texts {
		out[i] = types.Prediction{Text: text}
		for _, word := range strings.Fields(text) {
			if label, ok := a.keywords[word]; ok {
				out[i].Labels = []records.ClassPrediction{{Label: label, Score: 1}}
				break
			}
		}
		if asRecords {
			out[i].Record = out[i].AsRecord(a.cfg.RecordType, a.cfg.MultiLabel)
		}
	}
	return out, nil
}

func (a *keywordAdapter) UpdateConfig(overrides map[string]any) error { return nil }

func (a *keywordAdapter) String() string { return "keyword adapter" }

func (a *keywordAdapter) Release() {}

func keywordLoaders() map[records.Framework]types.AdapterLoader {
	loaders := map[records.Framework]types.AdapterLoader{}
	for _, fw := range records.Frameworks() {
		loaders[fw] = newKeywordAdapter
	}
	return loaders
}

func setupPostgresContainer(t *testing.T, ctx context.Context) string {
	dbName, dbUser, dbPassword := "test_db", "test_user", "test_password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	t.Cleanup(func() {
		err := postgresContainer.Terminate(context.Background())
		require.NoError(t, err, "Failed to terminate PostgreSQL container")
	})

	connStr, err := postgresContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get PostgreSQL connection string")

	return connStr
}

func httpRequest(api http.Handler, method, endpoint string, payload any, dest any) error {
	var body io.Reader
	if payload != nil {
		requestBody, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(requestBody)
	}

	req := httptest.NewRequest(method, endpoint, body)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	api.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		return fmt.Errorf("expected status code 200, got %d: %v", rr.Code, rr.Body.String())
	}

	if dest != nil {
		if err := json.Unmarshal(rr.Body.Bytes(), dest); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}
