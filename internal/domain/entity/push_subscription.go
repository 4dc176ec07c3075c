package entity

import "time"

// PushSubscription suscripción Web Push de un usuario. Un usuario puede tener varias (un registro por navegador).
type PushSubscription struct {
	ID        string
	UserID    string
	Endpoint  string
	P256dh    string
	Auth      string
	CreatedAt time.Time
}
