package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"canteen/internal/dto"
)

const (
	ordersExchange      = "orders_topic"
	executionQueue      = "order_execution"
	executionRoutingKey = "orders.execute"
	publishTimeout      = 5 * time.Second
)

// ExecutionPublisher pushes execute-order messages to the broker and exposes
// the subscriber-presence check the lifecycle manager requires before
// dispatching.
type ExecutionPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewExecutionPublisher(conn *amqp.Connection) (*ExecutionPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("opening channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ordersExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declaring exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		executionQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declaring queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		executionRoutingKey,
		ordersExchange,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("binding queue: %w", err)
	}

	return &ExecutionPublisher{
		conn:    conn,
		channel: ch,
	}, nil
}

// HasSubscribers reports whether at least one consumer is attached to the
// execution queue. The passive declare returns the live consumer count
// without touching the queue.
func (p *ExecutionPublisher) HasSubscribers(ctx context.Context) (bool, error) {
	q, err := p.channel.QueueDeclarePassive(
		executionQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return false, fmt.Errorf("inspecting execution queue: %w", err)
	}

	return q.Consumers > 0, nil
}

func (p *ExecutionPublisher) PublishExecution(ctx context.Context, msg dto.ExecutionMessage) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling execution message: %w", err)
	}

	return p.channel.PublishWithContext(
		pubCtx,
		ordersExchange,
		executionRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   msg.OrderUUID,
			Timestamp:   time.Now().UTC(),
			Body:        body,
		})
}

func (p *ExecutionPublisher) Close() error {
	return p.channel.Close()
}
