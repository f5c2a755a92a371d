package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/school-library/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(ctx context.Context, entity Entity, action Action, entityID int) error
	Close() error
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
	now      func() time.Time
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &publisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(20, 30*time.Second, 0.5, 3),
		log:      log.Named("events"),
		now:      time.Now,
	}
}

func (p *publisher) Publish(ctx context.Context, entity Entity, action Action, entityID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ev := Event{
		ID:        uuid.NewString(),
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
		Timestamp: p.now().UTC(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(entity),
		Value: sarama.ByteEncoder(data),
	}
	err = p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "SendMessage")
	}
	p.log.Debug("event published", zap.String("entity", string(entity)), zap.String("action", string(action)), zap.Int("id", entityID))
	return nil
}

func (p *publisher) Close() error {
	return p.producer.Close()
}

type nopPublisher struct{}

// NewNopPublisher is used when no brokers are configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Entity, Action, int) error { return nil }

func (nopPublisher) Close() error { return nil }
