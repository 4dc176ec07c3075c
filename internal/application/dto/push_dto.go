package dto

// PushKeys claves de la suscripción generadas por el navegador.
type PushKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

// SubscribePushRequest PushSubscription.toJSON() del navegador.
type SubscribePushRequest struct {
	Endpoint string   `json:"endpoint" validate:"required,url"`
	Keys     PushKeys `json:"keys"`
}

// UnsubscribePushRequest baja de una suscripción.
type UnsubscribePushRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}

// VAPIDKeyResponse clave pública para PushManager.subscribe.
type VAPIDKeyResponse struct {
	PublicKey string `json:"public_key"`
}
