// Package worker consumidores de las colas de RabbitMQ.
package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/restaurante-admin-api/internal/infrastructure/queue"
)

// Subscriber parte del broker que usan los workers.
type Subscriber interface {
	Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error
}

// MessageHandler procesa el cuerpo de un mensaje.
type MessageHandler interface {
	HandleMessage(ctx context.Context, message []byte) error
}

// NotificationWorker entrega los avisos al personal publicados en staff-notifications.
type NotificationWorker struct {
	handler MessageHandler
	broker  Subscriber
	log     zerolog.Logger
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewNotificationWorker construye el worker. timeout limita cada entrega (0 = sin límite).
func NewNotificationWorker(handler MessageHandler, broker Subscriber, timeout time.Duration, log zerolog.Logger) *NotificationWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &NotificationWorker{
		handler: handler,
		broker:  broker,
		log:     log,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start registra el consumidor; el consumo sigue en segundo plano hasta Stop.
func (w *NotificationWorker) Start() error {
	w.log.Info().Str("queue", queue.QueueStaffNotifications).Msg("iniciando worker de avisos")

	return w.broker.Subscribe(w.ctx, queue.QueueStaffNotifications, w.handleMessage)
}

// Stop deja de consumir mensajes nuevos.
func (w *NotificationWorker) Stop() {
	w.log.Info().Msg("deteniendo worker de avisos")
	w.cancel()
}

func (w *NotificationWorker) handleMessage(ctx context.Context, message []byte) error {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	if err := w.handler.HandleMessage(ctx, message); err != nil {
		w.log.Error().Err(err).Msg("entrega de aviso fallida")
		return err
	}
	return nil
}
