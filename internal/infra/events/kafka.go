package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/usecase"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
	logger  *slog.Logger
}

var _ usecase.EventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
	}
	return newKafkaPublisher(writer, cfg.WriteTimeout, logger)
}

func newKafkaPublisher(w messageWriter, timeout time.Duration, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, timeout: timeout, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev recharge.Event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return infra.WrapErr(p.logger, infra.KindPublish, "failed to encode event", err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(ev.Key()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.Type)},
		},
		Time: ev.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return infra.WrapErr(p.logger, infra.KindPublish, "failed to write event", err)
	}

	p.logger.DebugContext(ctx, "Event published",
		slog.String("type", string(ev.Type)),
		slog.String("reference", ev.Reference),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
