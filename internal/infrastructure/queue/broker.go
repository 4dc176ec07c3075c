// Package queue transporte de mensajes entre la API y los workers (RabbitMQ).
package queue

import (
	"context"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
)

// Broker publica y consume mensajes por nombre de cola.
type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

// MessageHandler procesa un mensaje; si devuelve error se reintenta y al agotar reintentos va a la DLQ.
type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueStaffNotifications    = ports.QueueStaffNotifications
	QueueStaffNotificationsDLQ = ports.QueueStaffNotifications + dlqSuffix

	dlqSuffix = "-dlq"
)

// DLQName cola de mensajes muertos de queueName.
func DLQName(queueName string) string {
	return queueName + dlqSuffix
}
