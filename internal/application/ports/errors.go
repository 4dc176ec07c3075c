package ports

import "errors"

// ErrSubscriptionGone la suscripción push ya no existe en el servicio del navegador.
var ErrSubscriptionGone = errors.New("suscripción push dada de baja")
