// Package cloudinary implementa ports.MediaStorage sobre el CDN de imágenes de Cloudinary.
package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/pkg/config"
)

var _ ports.MediaStorage = (*Storage)(nil)

// Storage sube y borra imágenes en Cloudinary.
type Storage struct {
	cld *cloudinary.Cloudinary
}

// New construye el adaptador. CLOUDINARY_URL tiene prioridad sobre cloud name/key/secret.
func New(cfg config.CloudinaryConfig) (*Storage, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cfg.URL != "" {
		cld, err = cloudinary.NewFromURL(cfg.URL)
	} else {
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	}
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &Storage{cld: cld}, nil
}

// Upload sube la imagen a in.Folder y devuelve su URL https y public_id.
func (s *Storage) Upload(ctx context.Context, r io.Reader, in ports.UploadInput) (ports.MediaAsset, error) {
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       in.Folder,
		ResourceType: "image",
	})
	if err != nil {
		return ports.MediaAsset{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return ports.MediaAsset{}, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" || res.PublicID == "" {
		return ports.MediaAsset{}, errors.New("cloudinary upload: respuesta sin secure_url/public_id")
	}
	return ports.MediaAsset{SecureURL: res.SecureURL, PublicID: res.PublicID}, nil
}

// Delete borra la imagen. "not found" se trata como éxito: el objetivo ya se cumple.
func (s *Storage) Delete(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, res.Error.Message)
	}
	switch res.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("cloudinary destroy %s: resultado %q", publicID, res.Result)
	}
}
