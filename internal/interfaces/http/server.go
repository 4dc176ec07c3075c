package http

import (
	"reflect"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AppOptions configuración de la aplicación Fiber.
type AppOptions struct {
	Name            string
	BodyLimit       int      // bytes; 0 = límite por defecto de Fiber
	AllowedOrigins  []string // vacío = sin CORS
	BranchCookieKey string   // base64 de 32 bytes; vacío = cookie de sucursal sin cifrar
	Log             zerolog.Logger
}

var parserOnce sync.Once

// NewApp construye la aplicación con los middlewares transversales. Las rutas se registran con Router.
func NewApp(opts AppOptions) *fiber.App {
	parserOnce.Do(registerParsers)

	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		BodyLimit:    opts.BodyLimit,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(AccessLog(opts.Log))

	if len(opts.AllowedOrigins) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete, fiber.MethodOptions},
			AllowedHeaders:   []string{fiber.HeaderAuthorization, fiber.HeaderContentType},
			AllowCredentials: true,
		})
		app.Use(adaptor.HTTPMiddleware(c.Handler))
	}

	// Solo la cookie de sucursal va cifrada; la de sesión la emite también Supabase y debe leerse tal cual.
	if opts.BranchCookieKey != "" {
		app.Use(encryptcookie.New(encryptcookie.Config{
			Key:    opts.BranchCookieKey,
			Except: []string{CookieSession},
		}))
	}
	return app
}

// AccessLog registra método, ruta, status, latencia y ámbito de cada petición.
func AccessLog(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		if err, ok := c.Locals(localError).(error); ok {
			ev = ev.AnErr("error", err)
		}
		scope := GetScope(c)
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("user_id", scope.UserID).
			Str("branch_id", scope.BranchID).
			Msg("http")
		return nil
	}
}

// registerParsers permite decimal.Decimal en formularios multipart y query strings (precio de la carta).
func registerParsers() {
	fiber.SetParserDecoder(fiber.ParserConfig{
		IgnoreUnknownKeys: true,
		ZeroEmpty:         true,
		ParserType: []fiber.ParserType{{
			Customtype: decimal.Decimal{},
			Converter: func(s string) reflect.Value {
				d, err := decimal.NewFromString(s)
				if err != nil {
					return reflect.Value{}
				}
				return reflect.ValueOf(d)
			},
		}},
	})
}
