// Package events publica los eventos de actividad en Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/gestor-sucursal/internal/application/ports"
)

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher escribe cada evento en el topic de actividades, particionado por tenant.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher crea un writer síncrono sobre los brokers indicados.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		WriteTimeout: 5 * time.Second,
	}}
}

func newKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// Publish serializa el evento en JSON; la llave es el tenant para conservar el orden por sucursal.
func (p *KafkaPublisher) Publish(ctx context.Context, evt ports.ActivityEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode %s: %w", evt.Type, err)
	}
	msg := kafka.Message{
		Key:   []byte(evt.ManagerID),
		Value: payload,
		Time:  evt.OccurredAt.UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", evt.Type, err)
	}
	return nil
}

// Close libera el writer.
func (p *KafkaPublisher) Close() error { return p.writer.Close() }
