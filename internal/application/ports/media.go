// Package ports define los puertos de salida de la capa de aplicación hacia servicios externos
// (CDN de imágenes, notificaciones, hojas de cálculo, PDF) y el runner transaccional.
package ports

import (
	"context"
	"io"
)

// UploadInput destino de una subida en el CDN.
type UploadInput struct {
	Folder   string // ej. "restaurante/<branch_id>/offers"
	Filename string // nombre original, solo informativo
}

// MediaAsset referencia devuelta por el CDN.
type MediaAsset struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// MediaStorage CDN de imágenes (Cloudinary).
type MediaStorage interface {
	Upload(ctx context.Context, r io.Reader, in UploadInput) (MediaAsset, error)
	Delete(ctx context.Context, publicID string) error
}
