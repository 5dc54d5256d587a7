package notify

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

// KafkaPublisher writes events to the notification topic keyed by user id.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(_ context.Context, ev model.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.UserID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

// Relay consumes notification events and hands them to the hub.
type Relay struct {
	hub   *Hub
	log   *zap.Logger
	ready chan struct{}
}

func NewRelay(hub *Hub, log *zap.Logger) *Relay {
	return &Relay{
		hub:   hub,
		log:   log.Named("relay"),
		ready: make(chan struct{}),
	}
}

func (r *Relay) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-r.ready:
	default:
		close(r.ready)
	}
	return nil
}

func (r *Relay) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (r *Relay) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				r.log.Warn("message channel was closed")
				return nil
			}
			var ev model.Event
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				r.log.Error("decode event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}
			if err := r.hub.Publish(session.Context(), ev); err != nil {
				return nil
			}
			r.log.Debug("event relayed", zap.String("type", string(ev.Type)), zap.Int64("user_id", ev.UserID))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
