// Package stream publishes tracking-view events to Kafka. Delivery is
// best effort: a redirect must never fail or slow down because the broker
// is unavailable.
package stream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/Kenji-One/tikd-api/pkg/config"
	"github.com/Kenji-One/tikd-api/pkg/logger"
)

// ViewEvent is one recorded visit through a tracking link.
type ViewEvent struct {
	LinkID     string    `json:"link_id"`
	Code       string    `json:"code"`
	OrgID      string    `json:"org_id"`
	MemberID   string    `json:"member_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ViewPublisher publishes view events for downstream consumers.
type ViewPublisher interface {
	// PublishView emits a view event without waiting for broker acks
	PublishView(ctx context.Context, event *ViewEvent)
	// Close flushes buffered records and releases the client
	Close()
}

// KafkaViewPublisher implements ViewPublisher using franz-go
type KafkaViewPublisher struct {
	client *kgo.Client
	topic  string
}

// NewKafkaViewPublisher creates a producer connected to the configured brokers
func NewKafkaViewPublisher(cfg *config.KafkaConfig) (*KafkaViewPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.ProducerBatchMaxBytes(1<<20),
		kgo.ProduceRequestTimeout(5*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &KafkaViewPublisher{client: client, topic: cfg.ViewsTopic}, nil
}

// PublishView emits a view event without waiting for broker acks. Failures
// are logged and dropped; the Redis counter remains the source of truth.
func (p *KafkaViewPublisher) PublishView(ctx context.Context, event *ViewEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.ErrorCtx(ctx, "marshal view event", zap.Error(err))
		return
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.LinkID),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			logger.Warn("publish view event failed", zap.Error(err))
		}
	})
}

// Close flushes buffered records and releases the client
func (p *KafkaViewPublisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}

// NoopViewPublisher drops every event. Used when producing is disabled.
type NoopViewPublisher struct{}

func (NoopViewPublisher) PublishView(context.Context, *ViewEvent) {}
func (NoopViewPublisher) Close()                                  {}
