package messaging

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue()
	results := q.WithResults(2)

	jobId := uuid.New()
	require.NoError(t, q.PublishTrainTask(context.Background(), TrainTaskPayload{JobId: jobId}))

	task := <-q.Tasks()
	assert.Equal(t, TrainingQueue, task.Type())

	var payload TrainTaskPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, jobId, payload.JobId)

	require.NoError(t, task.Ack())
	assert.Equal(t, "ack", <-results)

	q.Close()
	q.Close()

	_, ok := <-q.Tasks()
	assert.False(t, ok)

	assert.Error(t, q.PublishTrainTask(context.Background(), TrainTaskPayload{JobId: jobId}))
}
