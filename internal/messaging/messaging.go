package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TrainingQueue   = "training_queue"
	RetryDelay      = 5 * time.Second
	MaxConnectRetry = 5
)

type Task interface {
	Type() string

	Payload() []byte

	Ack() error

	Nack() error

	Reject() error
}

// TrainTaskPayload references a training job, the job row holds the settings.
type TrainTaskPayload struct {
	JobId uuid.UUID
}

type Publisher interface {
	PublishTrainTask(ctx context.Context, payload TrainTaskPayload) error

	Close()
}

type Receiver interface {
	Tasks() <-chan Task

	Close()
}
