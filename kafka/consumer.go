package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/inventory-information/pkg/logger"
)

// Consumer wraps Kafka consumer
type Consumer struct {
	consumer      sarama.ConsumerGroup
	groupID       string
	topics        []string
	handlers      map[string]EventHandler
	handlersMutex sync.RWMutex
	// retryBackoff is the pause after a failed Consume before rejoining.
	retryBackoff time.Duration
}

// EventHandler handles the raw payload of one message
type EventHandler func(ctx context.Context, payload []byte) error

// NewConsumer creates a new Kafka consumer
func NewConsumer(brokers []string, groupID string, topics []string) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Strs("topics", topics).
		Msg("Kafka consumer initialized")

	return newConsumer(consumer, groupID, topics), nil
}

func newConsumer(group sarama.ConsumerGroup, groupID string, topics []string) *Consumer {
	return &Consumer{
		consumer: group,
		groupID:  groupID,
		topics:   topics,
		handlers:     make(map[string]EventHandler),
		retryBackoff: time.Second,
	}
}

// RegisterHandler registers a handler. The key is matched against the
// event_type header first and the topic name second, so producers that do
// not set headers can still be routed by topic.
func (c *Consumer) RegisterHandler(key string, handler EventHandler) {
	c.handlersMutex.Lock()
	defer c.handlersMutex.Unlock()
	c.handlers[key] = handler
	logger.Logger.Info().
		Str("handler_key", key).
		Msg("Event handler registered")
}

// Start starts consuming messages
func (c *Consumer) Start(ctx context.Context) error {
	handler := &consumerGroupHandler{
		consumer: c,
	}

	go c.consumeLoop(ctx, handler)

	// Handle errors
	go func() {
		for err := range c.consumer.Errors() {
			logger.Logger.Error().
				Err(err).
				Msg("Consumer error")
		}
	}()

	logger.Logger.Info().
		Strs("topics", c.topics).
		Str("group_id", c.groupID).
		Msg("Kafka consumer started")

	return nil
}

// consumeLoop rejoins the group after every rebalance until ctx is done or
// the group is closed.
func (c *Consumer) consumeLoop(ctx context.Context, handler sarama.ConsumerGroupHandler) {
	for {
		if err := c.consumer.Consume(ctx, c.topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				logger.Logger.Info().Msg("Consumer group closed, stopping...")
				return
			}
			logger.Logger.Error().
				Err(err).
				Dur("retry_in", c.retryBackoff).
				Msg("Error from consumer")

			select {
			case <-ctx.Done():
			case <-time.After(c.retryBackoff):
			}
		}
		if ctx.Err() != nil {
			logger.Logger.Info().Msg("Consumer context cancelled, stopping...")
			return
		}
	}
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	if c.consumer != nil {
		return c.consumer.Close()
	}
	return nil
}

func (c *Consumer) lookup(eventType, topic string) (EventHandler, bool) {
	c.handlersMutex.RLock()
	defer c.handlersMutex.RUnlock()
	if h, ok := c.handlers[eventType]; ok && eventType != "" {
		return h, true
	}
	h, ok := c.handlers[topic]
	return h, ok
}

// consumerGroupHandler implements sarama.ConsumerGroupHandler
type consumerGroupHandler struct {
	consumer *Consumer
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		// Failed messages are still marked, there is no retry topic.
		if err := h.handleMessage(session.Context(), message); err != nil {
			logger.Error(session.Context()).
				Err(err).
				Str("topic", message.Topic).
				Int32("partition", message.Partition).
				Int64("offset", message.Offset).
				Msg("Skipping message")
		}
		session.MarkMessage(message, "")
	}
	return nil
}

var errNoHandler = errors.New("no handler registered")

func (h *consumerGroupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	// Extract trace context from Kafka headers
	carrier := propagation.MapCarrier{}
	eventType, eventID := "", ""
	for _, header := range message.Headers {
		switch key := string(header.Key); key {
		case "traceparent", "tracestate":
			carrier[key] = string(header.Value)
		case HeaderEventType:
			eventType = string(header.Value)
		case HeaderEventID:
			eventID = string(header.Value)
		}
	}
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

	tracer := otel.Tracer("kafka-consumer")
	ctx, span := tracer.Start(ctx, "kafka.consume "+message.Topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.source", message.Topic),
			attribute.String("messaging.source_kind", "topic"),
			attribute.Int("messaging.kafka.partition", int(message.Partition)),
			attribute.Int64("messaging.kafka.offset", message.Offset),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		),
	)
	defer span.End()

	logger.Debug(ctx).
		Str("topic", message.Topic).
		Int32("partition", message.Partition).
		Int64("offset", message.Offset).
		Msg("Received message")

	handler, ok := h.consumer.lookup(eventType, message.Topic)
	if !ok {
		span.SetStatus(codes.Error, "No handler registered")
		return fmt.Errorf("%w for event type %q", errNoHandler, eventType)
	}

	if err := handler(ctx, message.Value); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to handle event")
		return fmt.Errorf("handle event %s: %w", eventID, err)
	}

	span.SetStatus(codes.Ok, "Event handled successfully")
	logger.Info(ctx).
		Str("event_type", eventType).
		Str("event_id", eventID).
		Str("topic", message.Topic).
		Msg("Event handled successfully")
	return nil
}
