package ports

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

// PushSender entrega un payload Web Push a una suscripción.
// Devuelve ErrSubscriptionGone si el navegador dio de baja la suscripción (HTTP 404/410).
type PushSender interface {
	Send(ctx context.Context, sub *entity.PushSubscription, payload []byte) error
}

// ChatSender envía un mensaje de texto a un chat del personal (Telegram).
type ChatSender interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// EventPublisher publica eventos serializados en una cola.
type EventPublisher interface {
	Publish(ctx context.Context, queueName string, message []byte) error
}

// QueueStaffNotifications cola de avisos al personal (su DLQ es staff-notifications-dlq).
const QueueStaffNotifications = "staff-notifications"

// Tipos de aviso al personal.
const (
	EventReservationCreated  = "reservation.created"
	EventPrivateEventCreated = "private_event.created"
)

// StaffEvent aviso al personal de una sucursal.
type StaffEvent struct {
	Kind       string    `json:"kind"`
	BranchID   string    `json:"branch_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	URL        string    `json:"url"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier entrega avisos al personal. Nunca hace fallar la operación que lo origina.
type Notifier interface {
	Notify(ctx context.Context, ev StaffEvent)
}
