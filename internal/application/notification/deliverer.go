// Package notification entrega los avisos al personal (Web Push y Telegram), en proceso o a través de la cola.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

// pushPayload formato que espera el service worker del dashboard.
type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
	Kind  string `json:"kind"`
}

// Deliverer envía un StaffEvent por los canales configurados.
// push y chat son opcionales: sin ellos ese canal se omite.
type Deliverer struct {
	branchRepo   repository.BranchRepository
	settingsRepo repository.SettingsRepository
	subRepo      repository.PushSubscriptionRepository
	push         ports.PushSender
	chat         ports.ChatSender
	log          zerolog.Logger
}

// NewDeliverer construye el Deliverer.
func NewDeliverer(
	branchRepo repository.BranchRepository,
	settingsRepo repository.SettingsRepository,
	subRepo repository.PushSubscriptionRepository,
	push ports.PushSender,
	chat ports.ChatSender,
	log zerolog.Logger,
) *Deliverer {
	return &Deliverer{
		branchRepo:   branchRepo,
		settingsRepo: settingsRepo,
		subRepo:      subRepo,
		push:         push,
		chat:         chat,
		log:          log,
	}
}

// HandleMessage decodifica un mensaje de la cola y lo entrega.
func (d *Deliverer) HandleMessage(ctx context.Context, message []byte) error {
	var ev ports.StaffEvent
	if err := json.Unmarshal(message, &ev); err != nil {
		return fmt.Errorf("decodificar aviso: %w", err)
	}
	return d.Deliver(ctx, ev)
}

// Deliver envía el aviso a las suscripciones push del dueño de la sucursal y al chat de Telegram
// configurado. Solo devuelve error si no pudo cargar la sucursal; los fallos de cada canal se
// registran y no se reintentan, para no duplicar avisos ya entregados.
func (d *Deliverer) Deliver(ctx context.Context, ev ports.StaffEvent) error {
	branch, err := d.branchRepo.GetByID(ctx, ev.BranchID)
	if err != nil {
		return fmt.Errorf("cargar sucursal %s: %w", ev.BranchID, err)
	}
	if branch == nil {
		d.log.Warn().Str("branch_id", ev.BranchID).Str("kind", ev.Kind).Msg("aviso descartado: sucursal inexistente")
		return nil
	}

	if d.push != nil {
		d.sendPush(ctx, branch.OwnerID, ev)
	}
	if d.chat != nil {
		d.sendChat(ctx, ev)
	}
	return nil
}

func (d *Deliverer) sendPush(ctx context.Context, userID string, ev ports.StaffEvent) {
	subs, err := d.subRepo.ListByUser(ctx, userID)
	if err != nil {
		d.log.Error().Err(err).Str("user_id", userID).Msg("listar suscripciones push")
		return
	}
	payload, err := json.Marshal(pushPayload{Title: ev.Title, Body: ev.Body, URL: ev.URL, Kind: ev.Kind})
	if err != nil {
		d.log.Error().Err(err).Msg("serializar payload push")
		return
	}
	sent := 0
	for _, sub := range subs {
		err := d.push.Send(ctx, sub, payload)
		switch {
		case err == nil:
			sent++
		case errors.Is(err, ports.ErrSubscriptionGone):
			if derr := d.subRepo.DeleteByEndpoint(ctx, sub.Endpoint); derr != nil {
				d.log.Warn().Err(derr).Str("endpoint", sub.Endpoint).Msg("borrar suscripción caducada")
			}
		default:
			d.log.Warn().Err(err).Str("endpoint", sub.Endpoint).Msg("envío push fallido")
		}
	}
	d.log.Debug().Str("kind", ev.Kind).Int("sent", sent).Int("subscriptions", len(subs)).Msg("push enviado")
}

func (d *Deliverer) sendChat(ctx context.Context, ev ports.StaffEvent) {
	settings, err := d.settingsRepo.Get(ctx, ev.BranchID)
	if err != nil {
		d.log.Error().Err(err).Str("branch_id", ev.BranchID).Msg("cargar ajustes para telegram")
		return
	}
	if settings == nil || settings.TelegramChatID == nil {
		return
	}
	if err := d.chat.SendText(ctx, *settings.TelegramChatID, chatText(ev)); err != nil {
		d.log.Warn().Err(err).Int64("chat_id", *settings.TelegramChatID).Msg("envío telegram fallido")
	}
}

func chatText(ev ports.StaffEvent) string {
	var b strings.Builder
	b.WriteString(ev.Title)
	if ev.Body != "" {
		b.WriteString("\n")
		b.WriteString(ev.Body)
	}
	return b.String()
}
