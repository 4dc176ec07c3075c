// Package notify adaptadores de salida para avisos al personal: Web Push (VAPID) y Telegram.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/pkg/config"
)

var _ ports.PushSender = (*WebPushSender)(nil)

// pushTTL segundos que el servicio push guarda el aviso si el navegador está desconectado.
const pushTTL = 60 * 60

// WebPushSender envía avisos firmados con las claves VAPID del servidor.
type WebPushSender struct {
	cfg    config.PushConfig
	client *http.Client
}

// NewWebPushSender construye el sender. client nil usa http.DefaultClient.
func NewWebPushSender(cfg config.PushConfig, client *http.Client) *WebPushSender {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebPushSender{cfg: cfg, client: client}
}

// Send cifra y entrega el payload. 404/410 del servicio push -> ports.ErrSubscriptionGone.
func (s *WebPushSender) Send(ctx context.Context, sub *entity.PushSubscription, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys:     webpush.Keys{P256dh: sub.P256dh, Auth: sub.Auth},
	}, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.cfg.Subscriber,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		TTL:             pushTTL,
		Urgency:         webpush.UrgencyHigh,
	})
	if err != nil {
		return fmt.Errorf("web push: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ports.ErrSubscriptionGone
	case resp.StatusCode >= 300:
		return fmt.Errorf("web push: estado %d", resp.StatusCode)
	}
	return nil
}
