package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// openTrainingChannel dials the broker, opens a channel and makes sure the
// training queue exists. A positive prefetch limits unacked deliveries.
func openTrainingChannel(url string, prefetch int) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection
	var err error
	for attempt := 1; attempt <= MaxConnectRetry; attempt++ {
		if conn, err = amqp.Dial(url); err == nil {
			break
		}
		slog.Warn("broker dial failed", "attempt", attempt, "of", MaxConnectRetry, "error", err)
		time.Sleep(RetryDelay)
	}
	if conn == nil {
		return nil, nil, fmt.Errorf("unable to reach broker after %d attempts: %w", MaxConnectRetry, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("unable to open broker channel: %w", err)
	}

	if prefetch > 0 {
		if err := channel.Qos(prefetch, 0, false); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("unable to set prefetch of %d: %w", prefetch, err)
		}
	}

	if _, err := channel.QueueDeclare(TrainingQueue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("unable to declare queue %s: %w", TrainingQueue, err)
	}

	return conn, channel, nil
}

// redial retries fn until it succeeds or stop is closed. It reports whether
// fn succeeded.
func redial(stop <-chan struct{}, fn func() error) bool {
	for {
		err := fn()
		if err == nil {
			return true
		}
		slog.Warn("training queue still unreachable", "error", err)
		select {
		case <-stop:
			return false
		case <-time.After(RetryDelay * 10):
		}
	}
}

type RabbitMQPublisher struct {
	mu      sync.RWMutex
	conn    *amqp.Connection
	channel *amqp.Channel
	url     string
	done    chan struct{}
	closed  sync.Once
}

func NewRabbitMQPublisher(rabbitMQURL string) (*RabbitMQPublisher, error) {
	p := &RabbitMQPublisher{url: rabbitMQURL, done: make(chan struct{})}
	if err := p.open(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RabbitMQPublisher) open() error {
	conn, channel, err := openTrainingChannel(p.url, 0)
	if err != nil {
		return err
	}
	p.conn, p.channel = conn, channel
	slog.Info("training publisher ready", "queue", TrainingQueue)

	go p.watch(channel)
	return nil
}

// watch holds the write lock while the channel is re-established, so
// publishers block instead of failing during a broker restart.
func (p *RabbitMQPublisher) watch(channel *amqp.Channel) {
	lost, ok := <-channel.NotifyClose(make(chan *amqp.Error, 1))
	if !ok {
		return
	}
	slog.Warn("training publisher lost its channel", "reason", lost)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.conn, p.channel = nil, nil
	if redial(p.done, p.open) {
		slog.Info("training publisher back online")
	}
}

func (p *RabbitMQPublisher) publish(ctx context.Context, queue string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("unable to encode %s message: %w", queue, err)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.channel == nil || p.channel.IsClosed() {
		return fmt.Errorf("no open channel for queue %s", queue)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}
	if err := p.channel.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		slog.Error("training task not published", "queue", queue, "error", err)
		return fmt.Errorf("unable to publish to %s: %w", queue, err)
	}
	return nil
}

func (p *RabbitMQPublisher) PublishTrainTask(ctx context.Context, payload TrainTaskPayload) error {
	return p.publish(ctx, TrainingQueue, payload)
}

func (p *RabbitMQPublisher) Close() {
	p.closed.Do(func() {
		close(p.done)

		p.mu.RLock()
		defer p.mu.RUnlock()
		if p.conn == nil {
			return
		}
		if err := p.conn.Close(); err != nil {
			slog.Error("training publisher shutdown", "error", err)
		}
	})
}

type RabbitMQTask struct {
	d amqp.Delivery
}

func (t *RabbitMQTask) Type() string {
	return t.d.RoutingKey
}

func (t *RabbitMQTask) Payload() []byte {
	return t.d.Body
}

func (t *RabbitMQTask) Ack() error {
	return t.d.Ack(false)
}

// Nack drops the message without requeueing, a failed training job is not
// retried automatically.
func (t *RabbitMQTask) Nack() error {
	return t.d.Nack(false, false)
}

func (t *RabbitMQTask) Reject() error {
	return t.d.Reject(false)
}

type RabbitMQReceiver struct {
	tasks    chan Task
	url      string
	stop     chan struct{}
	stopOnce sync.Once
}

func NewRabbitMQReceiver(rabbitMQURL string) (*RabbitMQReceiver, error) {
	c := &RabbitMQReceiver{
		tasks: make(chan Task),
		url:   rabbitMQURL,
		stop:  make(chan struct{}),
	}

	if err := c.subscribe(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *RabbitMQReceiver) forward(deliveries <-chan amqp.Delivery) {
	for d := range deliveries {
		select {
		case c.tasks <- &RabbitMQTask{d: d}:
		case <-c.stop:
			return
		}
	}
}

func (c *RabbitMQReceiver) subscribe() error {
	// Training runs are long, so each worker holds a single unacked message.
	conn, channel, err := openTrainingChannel(c.url, 1)
	if err != nil {
		return err
	}

	deliveries, err := channel.Consume(TrainingQueue, "", false, false, false, false, nil)
	if err != nil {
		conn.Close()
		return fmt.Errorf("unable to consume %s: %w", TrainingQueue, err)
	}

	go c.forward(deliveries)
	go c.watch(conn, channel)
	return nil
}

func (c *RabbitMQReceiver) watch(conn *amqp.Connection, channel *amqp.Channel) {
	select {
	case lost, ok := <-channel.NotifyClose(make(chan *amqp.Error, 1)):
		if !ok {
			return
		}
		slog.Warn("training consumer lost its channel", "reason", lost)
		if redial(c.stop, c.subscribe) {
			slog.Info("training consumer resubscribed", "queue", TrainingQueue)
		}
	case <-c.stop:
		if err := conn.Close(); err != nil {
			slog.Error("training consumer shutdown", "error", err)
		}
	}
}

func (c *RabbitMQReceiver) Tasks() <-chan Task {
	return c.tasks
}

func (c *RabbitMQReceiver) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}
