// Package media coordina las subidas al CDN con la escritura de la fila que las referencia.
//
// Subida: primero el CDN, después la base de datos. Si la escritura falla, la imagen recién
// subida se borra (compensación) para no dejar huérfanos en el CDN.
// Borrado: primero la fila, después la imagen. Un fallo al borrar la imagen se registra y
// no revierte el borrado de la fila.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
)

// File imagen recibida en un multipart.
type File struct {
	Reader      io.Reader
	Filename    string
	Size        int64 // tamaño declarado; -1 si se desconoce
	ContentType string
}

// Service adaptador de subida con rollback.
type Service struct {
	storage    ports.MediaStorage
	baseFolder string
	maxBytes   int64
	log        zerolog.Logger
}

// NewService construye el servicio. storage puede ser nil (CDN no configurado): las subidas fallan con ErrUpstream.
func NewService(storage ports.MediaStorage, baseFolder string, maxBytes int64, log zerolog.Logger) *Service {
	return &Service{storage: storage, baseFolder: baseFolder, maxBytes: maxBytes, log: log}
}

// Folder carpeta del CDN para un tipo de recurso de una sucursal: <base>/<branch_id>/<kind>.
func (s *Service) Folder(branchID, kind string) string {
	return path.Join(s.baseFolder, branchID, kind)
}

// UploadAndPersist sube f a folder y llama a persist con la referencia devuelta.
// Si persist falla se borra la imagen subida y se devuelve ErrUpstream envolviendo el error de persist.
func (s *Service) UploadAndPersist(ctx context.Context, f File, folder string, persist func(ports.MediaAsset) error) (ports.MediaAsset, error) {
	asset, err := s.Upload(ctx, f, folder)
	if err != nil {
		return ports.MediaAsset{}, err
	}
	if err := persist(asset); err != nil {
		s.rollback(ctx, asset.PublicID)
		if errors.Is(err, domain.ErrNotFound) {
			return ports.MediaAsset{}, err
		}
		return ports.MediaAsset{}, fmt.Errorf("%w: persistir imagen: %w", domain.ErrUpstream, err)
	}
	return asset, nil
}

// Upload valida tamaño y tipo y sube el archivo al CDN.
func (s *Service) Upload(ctx context.Context, f File, folder string) (ports.MediaAsset, error) {
	if f.Reader == nil {
		return ports.MediaAsset{}, fmt.Errorf("%w: imagen requerida", domain.ErrInvalidInput)
	}
	if s.maxBytes > 0 && f.Size > s.maxBytes {
		return ports.MediaAsset{}, fmt.Errorf("%w: máximo %d MB", domain.ErrFileTooLarge, s.maxBytes/(1024*1024))
	}
	body, err := s.readLimited(f.Reader)
	if err != nil {
		return ports.MediaAsset{}, err
	}
	if ct := sniff(body, f.ContentType); !strings.HasPrefix(ct, "image/") {
		return ports.MediaAsset{}, fmt.Errorf("%w: el archivo no es una imagen (%s)", domain.ErrInvalidInput, ct)
	}
	if s.storage == nil {
		return ports.MediaAsset{}, fmt.Errorf("%w: CDN de imágenes no configurado", domain.ErrUpstream)
	}
	asset, err := s.storage.Upload(ctx, bytes.NewReader(body), ports.UploadInput{Folder: folder, Filename: f.Filename})
	if err != nil {
		return ports.MediaAsset{}, fmt.Errorf("%w: subir imagen: %w", domain.ErrUpstream, err)
	}
	return asset, nil
}

// RemoveAfterDelete borra la imagen de una fila ya eliminada. No-op si publicID está vacío.
// Los fallos se registran y se ignoran.
func (s *Service) RemoveAfterDelete(ctx context.Context, publicID string) {
	if publicID == "" || s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, publicID); err != nil {
		s.log.Warn().Err(err).Str("public_id", publicID).Msg("no se pudo borrar la imagen del CDN; queda huérfana")
	}
}

func (s *Service) rollback(ctx context.Context, publicID string) {
	if publicID == "" || s.storage == nil {
		return
	}
	// La petición original puede estar cancelada; la compensación se intenta igual.
	if err := s.storage.Delete(context.WithoutCancel(ctx), publicID); err != nil {
		s.log.Error().Err(err).Str("public_id", publicID).Msg("rollback de imagen fallido")
	}
}

// readLimited lee el archivo completo sin pasar de maxBytes (el tamaño declarado puede mentir).
func (s *Service) readLimited(r io.Reader) ([]byte, error) {
	if s.maxBytes <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: leer imagen: %w", domain.ErrInvalidInput, err)
	}
	if int64(len(body)) > s.maxBytes {
		return nil, fmt.Errorf("%w: máximo %d MB", domain.ErrFileTooLarge, s.maxBytes/(1024*1024))
	}
	return body, nil
}

func sniff(body []byte, declared string) string {
	if strings.HasPrefix(declared, "image/") {
		return declared
	}
	return http.DetectContentType(body)
}
