package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
)

var (
	_ Broker               = (*RabbitMQBroker)(nil)
	_ ports.EventPublisher = (*RabbitMQBroker)(nil)
)

const (
	headerRetryCount    = "x-retry-count"
	headerOriginalQueue = "x-original-queue"
	headerError         = "x-error"
)

// RabbitMQBroker Broker sobre un único canal AMQP.
type RabbitMQBroker struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	maxRetries int
	retryDelay time.Duration
	log        zerolog.Logger
	mu         sync.RWMutex
}

// Config conexión y política de reintentos.
type Config struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration // base del backoff exponencial
	PrefetchCount int
}

// NewRabbitMQBroker conecta y declara las colas de avisos y su DLQ.
func NewRabbitMQBroker(cfg Config, log zerolog.Logger) (*RabbitMQBroker, error) {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("conectar a RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("abrir canal: %w", err)
	}
	if err := channel.Qos(cfg.PrefetchCount, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("configurar QoS: %w", err)
	}

	b := &RabbitMQBroker{
		conn:       conn,
		channel:    channel,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		log:        log,
	}
	for _, name := range []string{QueueStaffNotifications, QueueStaffNotificationsDLQ} {
		if err := b.declareQueue(name); err != nil {
			b.Close()
			return nil, err
		}
	}
	return b, nil
}

func (b *RabbitMQBroker) declareQueue(queueName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("declarar cola %s: %w", queueName, err)
	}
	return nil
}

// Publish publica un mensaje persistente en la cola.
func (b *RabbitMQBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	return b.publish(ctx, queueName, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         message,
		Timestamp:    time.Now(),
	})
}

func (b *RabbitMQBroker) publish(ctx context.Context, queueName string, msg amqp.Publishing) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.channel.PublishWithContext(ctx, "", queueName, false, false, msg); err != nil {
		return fmt.Errorf("publicar en %s: %w", queueName, err)
	}
	return nil
}

// Subscribe registra un consumidor con ack manual. El consumo termina al cancelar ctx.
func (b *RabbitMQBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	b.mu.RLock()
	msgs, err := b.channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	b.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("registrar consumidor en %s: %w", queueName, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				b.handleMessage(ctx, msg, handler, queueName)
			}
		}
	}()
	return nil
}

// handleMessage reintenta con backoff exponencial (base, 2*base, 4*base...) y al agotar los
// reintentos mueve el mensaje a la DLQ. El original siempre se confirma.
func (b *RabbitMQBroker) handleMessage(ctx context.Context, msg amqp.Delivery, handler MessageHandler, queueName string) {
	defer func() { _ = msg.Ack(false) }()

	err := handler(ctx, msg.Body)
	if err == nil {
		return
	}

	retries := RetryCount(msg.Headers)
	log := b.log.With().Str("queue", queueName).Int("retry", retries).Err(err).Logger()

	if retries < b.maxRetries {
		select {
		case <-ctx.Done():
			// Apagando: se vuelve a publicar sin esperar para no perder el mensaje.
		case <-time.After(b.retryDelay << retries):
		}
		log.Warn().Msg("mensaje fallido; se reintenta")
		perr := b.publish(context.WithoutCancel(ctx), queueName, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  msg.ContentType,
			Body:         msg.Body,
			Headers:      amqp.Table{headerRetryCount: int32(retries + 1)},
			Timestamp:    time.Now(),
		})
		if perr != nil {
			log.Error().AnErr("publish_error", perr).Msg("no se pudo reencolar el mensaje")
		}
		return
	}

	log.Error().Msg("reintentos agotados; mensaje a la DLQ")
	perr := b.publish(context.WithoutCancel(ctx), DLQName(queueName), amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  msg.ContentType,
		Body:         msg.Body,
		Headers: amqp.Table{
			headerOriginalQueue: queueName,
			headerRetryCount:    int32(retries),
			headerError:         err.Error(),
		},
		Timestamp: time.Now(),
	})
	if perr != nil {
		log.Error().AnErr("publish_error", perr).Msg("no se pudo mover el mensaje a la DLQ")
	}
}

// RetryCount lee x-retry-count; AMQP puede entregarlo como cualquier entero.
func RetryCount(headers amqp.Table) int {
	switch v := headers[headerRetryCount].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case int16:
		return int(v)
	case int8:
		return int(v)
	}
	return 0
}

// Close cierra canal y conexión.
func (b *RabbitMQBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
