package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type inMemoryTask struct {
	queue   string
	payload []byte
	result  chan<- string
}

func (t *inMemoryTask) Type() string {
	return t.queue
}

func (t *inMemoryTask) Payload() []byte {
	return t.payload
}

func (t *inMemoryTask) settle(outcome string) error {
	if t.result != nil {
		t.result <- outcome
	}
	return nil
}

func (t *inMemoryTask) Ack() error {
	return t.settle("ack")
}

func (t *inMemoryTask) Nack() error {
	return t.settle("nack")
}

func (t *inMemoryTask) Reject() error {
	return t.settle("reject")
}

// InMemoryQueue is a Publisher and Receiver for running the api and worker in
// one process.
type InMemoryQueue struct {
	mu     sync.RWMutex
	tasks  chan Task
	closed bool

	// results receives "ack", "nack" or "reject" for every settled task when
	// set.
	results chan string
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		tasks: make(chan Task, 100),
	}
}

// WithResults makes the queue report how each task was settled.
func (q *InMemoryQueue) WithResults(buffer int) <-chan string {
	q.results = make(chan string, buffer)
	return q.results
}

func (q *InMemoryQueue) publish(ctx context.Context, queue string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", queue, err)
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return fmt.Errorf("queue is closed")
	}

	select {
	case q.tasks <- &inMemoryTask{queue: queue, payload: data, result: q.results}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *InMemoryQueue) PublishTrainTask(ctx context.Context, payload TrainTaskPayload) error {
	return q.publish(ctx, TrainingQueue, payload)
}

func (q *InMemoryQueue) Tasks() <-chan Task {
	return q.tasks
}

func (q *InMemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		close(q.tasks)
		q.closed = true
	}
}
