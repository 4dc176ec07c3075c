package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/restaurante-admin-api/internal/application/analytics"
	"github.com/jhoicas/restaurante-admin-api/internal/application/auth"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Resolver      SessionResolver
	BranchUC      *usecase.BranchUseCase
	SettingsUC    *usecase.SettingsUseCase
	MenuUC        *usecase.MenuUseCase
	ReservationUC *usecase.ReservationUseCase
	OfferUC       *usecase.OfferUseCase
	FAQUC         *usecase.FAQUseCase
	GalleryUC     *usecase.GalleryUseCase
	EventUC       *usecase.PrivateEventUseCase
	AnalyticsUC   *appanalytics.UseCase
	TransactionUC *usecase.TransactionUseCase
	PushUC        *usecase.PushUseCase
	Cookies       CookieOptions
	ServiceName   string
	// FrontendDir build estático del dashboard; vacío = solo API.
	FrontendDir string
}

// Router registra las rutas. Todo pasa por SessionMiddleware, que decide qué es público.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	app.Use(SessionMiddleware(deps.Resolver, deps.Cookies))

	api := app.Group("/api")

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookies)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Get("/me", authHandler.Me)

	api.Post("/invites", authHandler.CreateInvite)
	api.Get("/invites/:token", authHandler.ValidateInvite)
	api.Post("/onboarding", authHandler.Onboard)

	// Sucursales y ajustes
	branchHandler := NewBranchHandler(deps.BranchUC, deps.SettingsUC, deps.Cookies)
	branches := api.Group("/branches")
	branches.Get("/", branchHandler.List)
	branches.Post("/", branchHandler.Create)
	branches.Post("/select", branchHandler.Select)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)
	api.Get("/settings", branchHandler.GetSettings)
	api.Put("/settings", branchHandler.UpsertSettings)

	// Carta
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu := api.Group("/menu")
	menu.Get("/", menuHandler.List)
	menu.Post("/", menuHandler.Create)
	menu.Post("/import", menuHandler.Import)
	menu.Get("/:id", menuHandler.GetByID)
	menu.Put("/:id", menuHandler.Update)
	menu.Delete("/:id", menuHandler.Delete)

	// Reservas
	reservationHandler := NewReservationHandler(deps.ReservationUC)
	reservations := api.Group("/reservations")
	reservations.Get("/", reservationHandler.List)
	reservations.Post("/", reservationHandler.Create)
	reservations.Get("/:id", reservationHandler.GetByID)
	reservations.Put("/:id", reservationHandler.Update)
	reservations.Patch("/:id/status", reservationHandler.UpdateStatus)
	reservations.Delete("/:id", reservationHandler.Delete)

	// Ofertas
	offerHandler := NewOfferHandler(deps.OfferUC)
	offers := api.Group("/offers")
	offers.Get("/", offerHandler.List)
	offers.Post("/", offerHandler.Create)
	offers.Put("/:id", offerHandler.Update)
	offers.Delete("/:id", offerHandler.Delete)

	// FAQs
	faqHandler := NewFAQHandler(deps.FAQUC)
	faqs := api.Group("/faqs")
	faqs.Get("/", faqHandler.List)
	faqs.Post("/", faqHandler.Create)
	faqs.Put("/reorder", faqHandler.Reorder)
	faqs.Put("/:id", faqHandler.Update)
	faqs.Delete("/:id", faqHandler.Delete)

	// Galería
	galleryHandler := NewGalleryHandler(deps.GalleryUC)
	gallery := api.Group("/gallery")
	gallery.Get("/", galleryHandler.List)
	gallery.Post("/", galleryHandler.Upload)
	gallery.Put("/reorder", galleryHandler.Reorder)
	gallery.Put("/:id", galleryHandler.UpdateCaption)
	gallery.Delete("/:id", galleryHandler.Delete)

	// Eventos privados
	eventHandler := NewPrivateEventHandler(deps.EventUC)
	events := api.Group("/events")
	events.Get("/", eventHandler.List)
	events.Post("/", eventHandler.Create)
	events.Get("/:id", eventHandler.GetByID)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)

	// Analítica y transacciones
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.TransactionUC)
	api.Get("/analytics", analyticsHandler.Snapshot)
	api.Get("/analytics/report.pdf", analyticsHandler.Report)
	api.Get("/payments", analyticsHandler.Payments)
	api.Get("/orders", analyticsHandler.Orders)

	// Web Push
	pushHandler := NewPushHandler(deps.PushUC)
	push := api.Group("/push")
	push.Get("/vapid-key", pushHandler.VAPIDKey)
	push.Post("/subscriptions", pushHandler.Subscribe)
	push.Delete("/subscriptions", pushHandler.Unsubscribe)

	api.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	// Dashboard estático: las páginas pasan por las mismas reglas de redirección
	if deps.FrontendDir != "" {
		app.Static("/", deps.FrontendDir, fiber.Static{Compress: true, Index: "index.html"})
	}
}
