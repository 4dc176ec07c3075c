package notification

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
)

const deliverTimeout = 30 * time.Second

// Dispatcher implementa ports.Notifier. Con publisher publica el aviso en la cola y lo entrega
// el worker; sin publisher, o si la publicación falla, lo entrega en segundo plano dentro del proceso.
type Dispatcher struct {
	publisher ports.EventPublisher
	deliverer *Deliverer
	log       zerolog.Logger
	now       func() time.Time
	wg        sync.WaitGroup
}

// NewDispatcher construye el Dispatcher. publisher puede ser nil.
func NewDispatcher(publisher ports.EventPublisher, deliverer *Deliverer, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{publisher: publisher, deliverer: deliverer, log: log, now: time.Now}
}

// Notify no bloquea la petición ni devuelve error: los fallos solo se registran.
func (d *Dispatcher) Notify(ctx context.Context, ev ports.StaffEvent) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = d.now()
	}
	// La petición puede terminar antes que la entrega.
	ctx = context.WithoutCancel(ctx)

	if d.publisher != nil {
		body, err := json.Marshal(ev)
		if err == nil {
			err = d.publisher.Publish(ctx, ports.QueueStaffNotifications, body)
		}
		if err == nil {
			return
		}
		d.log.Warn().Err(err).Str("kind", ev.Kind).Msg("publicar aviso en cola; se entrega en proceso")
	}
	d.deliverLocal(ctx, ev)
}

func (d *Dispatcher) deliverLocal(ctx context.Context, ev ports.StaffEvent) {
	if d.deliverer == nil {
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, deliverTimeout)
		defer cancel()
		if err := d.deliverer.Deliver(ctx, ev); err != nil {
			d.log.Error().Err(err).Str("kind", ev.Kind).Str("branch_id", ev.BranchID).Msg("entregar aviso")
		}
	}()
}

// Wait espera a que terminen las entregas en curso (apagado ordenado y tests).
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
