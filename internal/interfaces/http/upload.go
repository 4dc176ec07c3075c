package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-admin-api/internal/application/media"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
)

const imageField = "image"

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}

// formImage devuelve la imagen del campo "image" o nil si la petición no trae ninguna.
// release libera el archivo y debe llamarse siempre.
func formImage(c *fiber.Ctx) (img *media.File, release func(), err error) {
	release = func() {}
	if !isMultipart(c) {
		return nil, release, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, release, fmt.Errorf("%w: formulario multipart inválido", domain.ErrInvalidInput)
	}
	files := form.File[imageField]
	if len(files) == 0 {
		return nil, release, nil
	}
	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		return nil, release, fmt.Errorf("%w: no se pudo leer la imagen", domain.ErrInvalidInput)
	}
	return &media.File{
		Reader:      f,
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
	}, func() { _ = f.Close() }, nil
}
