package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/usecase"
)

// EventProcessor posts one inbound transaction event.
type EventProcessor interface {
	Process(ctx context.Context, event domain.TransactionEvent) (*usecase.PostingResult, error)
}

// ConsumerConfig configures the transaction event consumer.
type ConsumerConfig struct {
	Exchange           string
	Queue              string
	RoutingKey         string
	DeadLetterExchange string
	Prefetch           int
}

type disposition int

const (
	dispositionAck disposition = iota
	dispositionRequeue
	dispositionReject
)

// Consumer consumes savings transaction events from RabbitMQ and posts them.
type Consumer struct {
	channel   *amqp.Channel
	config    ConsumerConfig
	processor EventProcessor
	logger    zerolog.Logger
}

// NewConsumer opens a channel on conn and declares the exchange, queue, and binding.
func NewConsumer(conn *amqp.Connection, cfg ConsumerConfig, processor EventProcessor, logger zerolog.Logger) (*Consumer, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel, cfg); err != nil {
		channel.Close()
		return nil, err
	}

	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}

	if err := channel.Qos(prefetch, 0, false); err != nil {
		channel.Close()
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}

	logger = logger.With().Str("component", "consumer").Str("queue", cfg.Queue).Logger()
	logger.Info().
		Str("exchange", cfg.Exchange).
		Str("routing_key", cfg.RoutingKey).
		Int("prefetch", prefetch).
		Msg("transaction consumer initialized")

	return &Consumer{
		channel:   channel,
		config:    cfg,
		processor: processor,
		logger:    logger,
	}, nil
}

func declareTopology(channel *amqp.Channel, cfg ConsumerConfig) error {
	err := channel.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	var args amqp.Table
	if cfg.DeadLetterExchange != "" {
		args = amqp.Table{"x-dead-letter-exchange": cfg.DeadLetterExchange}
	}

	queue, err := channel.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		args,      // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := channel.QueueBind(queue.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	return nil
}

// Start consumes messages until ctx is cancelled. Messages are acknowledged
// only after their postings commit.
func (c *Consumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		c.config.Queue, // queue
		"",             // consumer tag (auto-generated)
		false,          // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info().Msg("transaction consumer started")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("context cancelled, stopping consumer")
			return nil

		case msg, ok := <-msgs:
			if !ok {
				return errors.New("message channel closed")
			}

			var ackErr error

			switch c.handle(ctx, msg) {
			case dispositionAck:
				ackErr = msg.Ack(false)
			case dispositionRequeue:
				ackErr = msg.Nack(false, true)
			case dispositionReject:
				ackErr = msg.Nack(false, false)
			}

			if ackErr != nil {
				c.logger.Error().Err(ackErr).Str("message_id", msg.MessageId).Msg("failed to acknowledge message")
			}
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg amqp.Delivery) disposition {
	var event domain.TransactionEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		c.logger.Error().Err(err).Str("message_id", msg.MessageId).Msg("undecodable transaction event")
		return dispositionReject
	}

	event.ReceivedAt = time.Now().UTC()

	log := c.logger.With().
		Str("message_id", msg.MessageId).
		Str("transaction_id", event.Transaction.ID).
		Str("external_transaction_id", event.Transaction.ExternalTransactionID).
		Logger()

	result, err := c.processor.Process(ctx, event)
	if err != nil {
		if isPermanent(err) {
			log.Error().Err(err).Msg("rejecting transaction event")
			return dispositionReject
		}

		log.Warn().Err(err).Bool("redelivered", msg.Redelivered).Msg("transaction event failed, requeueing")
		return dispositionRequeue
	}

	log.Debug().
		Str("group_transaction_id", result.GroupTransactionID).
		Bool("duplicate", result.Duplicate).
		Int("entries", result.EntryCount).
		Msg("transaction event processed")

	return dispositionAck
}

// isPermanent reports whether redelivering the event cannot succeed.
func isPermanent(err error) bool {
	for _, target := range []error{
		domain.ErrValidation,
		domain.ErrUnbalancedPosting,
		domain.ErrSplitOverAllocation,
		domain.ErrMissingAccountMapping,
		domain.ErrNotFound,
		domain.ErrChartBasisMismatch,
		domain.ErrUnsupportedCalcKind,
		domain.ErrEmptyGroupID,
		domain.ErrMixedGroup,
		domain.ErrMissingSide,
		domain.ErrDuplicateGroup,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Close closes the consumer's channel.
func (c *Consumer) Close() error {
	return c.channel.Close()
}
