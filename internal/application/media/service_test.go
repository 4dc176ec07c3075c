package media_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-admin-api/internal/application/media"
	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000000000000000")

type fakeStorage struct {
	uploads   []ports.UploadInput
	deletes   []string
	uploadErr error
	deleteErr error
}

func (f *fakeStorage) Upload(_ context.Context, r io.Reader, in ports.UploadInput) (ports.MediaAsset, error) {
	if f.uploadErr != nil {
		return ports.MediaAsset{}, f.uploadErr
	}
	_, _ = io.ReadAll(r)
	f.uploads = append(f.uploads, in)
	return ports.MediaAsset{SecureURL: "https://cdn.test/" + in.Folder + "/img.png", PublicID: in.Folder + "/img"}, nil
}

func (f *fakeStorage) Delete(_ context.Context, publicID string) error {
	f.deletes = append(f.deletes, publicID)
	return f.deleteErr
}

func pngFile() media.File {
	return media.File{Reader: bytes.NewReader(pngHeader), Filename: "foto.png", Size: int64(len(pngHeader))}
}

func TestUploadAndPersist_OK(t *testing.T) {
	st := &fakeStorage{}
	svc := media.NewService(st, "r", 9<<20, zerolog.Nop())

	var persisted ports.MediaAsset
	asset, err := svc.UploadAndPersist(context.Background(), pngFile(), "r/b1/offers", func(a ports.MediaAsset) error {
		persisted = a
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "r/b1/offers/img", asset.PublicID)
	assert.Equal(t, asset, persisted)
	assert.Empty(t, st.deletes)
}

func TestUploadAndPersist_FalloDB_BorraImagenYDevuelveUpstream(t *testing.T) {
	st := &fakeStorage{}
	svc := media.NewService(st, "r", 9<<20, zerolog.Nop())

	_, err := svc.UploadAndPersist(context.Background(), pngFile(), "r/b1/offers", func(ports.MediaAsset) error {
		return errors.New("insert offer: conexión perdida")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, []string{"r/b1/offers/img"}, st.deletes, "la imagen subida debe borrarse")
}

func TestUploadAndPersist_FalloRollback_SeIgnora(t *testing.T) {
	st := &fakeStorage{deleteErr: errors.New("cdn caído")}
	svc := media.NewService(st, "r", 9<<20, zerolog.Nop())

	_, err := svc.UploadAndPersist(context.Background(), pngFile(), "x", func(ports.MediaAsset) error {
		return errors.New("db")
	})
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Len(t, st.deletes, 1)
}

func TestUploadAndPersist_FalloSubida_NoPersiste(t *testing.T) {
	st := &fakeStorage{uploadErr: errors.New("401 cloudinary")}
	svc := media.NewService(st, "r", 9<<20, zerolog.Nop())

	called := false
	_, err := svc.UploadAndPersist(context.Background(), pngFile(), "x", func(ports.MediaAsset) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.False(t, called)
	assert.Empty(t, st.deletes)
}

func TestUpload_ArchivoDemasiadoGrande(t *testing.T) {
	st := &fakeStorage{}
	svc := media.NewService(st, "r", 10, zerolog.Nop())

	_, err := svc.Upload(context.Background(), pngFile(), "x")
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Empty(t, st.uploads)

	// Tamaño declarado falso: se detecta al leer
	f := pngFile()
	f.Size = 1
	_, err = svc.Upload(context.Background(), f, "x")
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestUpload_NoEsImagen(t *testing.T) {
	svc := media.NewService(&fakeStorage{}, "r", 9<<20, zerolog.Nop())
	f := media.File{Reader: bytes.NewReader([]byte("hola, esto es texto")), Size: 19}

	_, err := svc.Upload(context.Background(), f, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpload_SinCDN(t *testing.T) {
	svc := media.NewService(nil, "r", 9<<20, zerolog.Nop())
	_, err := svc.Upload(context.Background(), pngFile(), "x")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestRemoveAfterDelete(t *testing.T) {
	st := &fakeStorage{deleteErr: errors.New("cdn caído")}
	svc := media.NewService(st, "r", 0, zerolog.Nop())

	svc.RemoveAfterDelete(context.Background(), "")
	assert.Empty(t, st.deletes)

	svc.RemoveAfterDelete(context.Background(), "abc123")
	assert.Equal(t, []string{"abc123"}, st.deletes)
}

func TestFolder(t *testing.T) {
	svc := media.NewService(nil, "restaurante", 0, zerolog.Nop())
	assert.Equal(t, "restaurante/b1/offers", svc.Folder("b1", "offers"))
}
