package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	appanalytics "github.com/jhoicas/restaurante-admin-api/internal/application/analytics"
	"github.com/jhoicas/restaurante-admin-api/internal/application/auth"
	"github.com/jhoicas/restaurante-admin-api/internal/application/media"
	"github.com/jhoicas/restaurante-admin-api/internal/application/notification"
	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-admin-api/internal/infrastructure/cloudinary"
	"github.com/jhoicas/restaurante-admin-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/restaurante-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurante-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/restaurante-admin-api/internal/infrastructure/queue"
	"github.com/jhoicas/restaurante-admin-api/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/restaurante-admin-api/internal/interfaces/http"
	"github.com/jhoicas/restaurante-admin-api/internal/worker"
	"github.com/jhoicas/restaurante-admin-api/pkg/config"
	"github.com/jhoicas/restaurante-admin-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	level := "info"
	if cfg.App.Env == "development" {
		level = "debug"
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.RunMigrations {
		if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", cfg.App.Timezone).Msg("zona horaria inválida, se usa UTC")
		loc = time.UTC
	}

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	inviteRepo := postgres.NewInviteRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	menuRepo := postgres.NewMenuItemRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	faqRepo := postgres.NewFAQRepository(pool)
	galleryRepo := postgres.NewGalleryRepository(pool)
	eventRepo := postgres.NewPrivateEventRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	pushRepo := postgres.NewPushSubscriptionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// CDN de imágenes: sin credenciales las subidas responden 502
	var storage ports.MediaStorage
	if cfg.Cloudinary.Enabled() {
		cld, err := cloudinary.New(cfg.Cloudinary)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente Cloudinary")
		}
		storage = cld
	} else {
		log.Warn().Msg("Cloudinary no configurado: las subidas de imágenes fallarán")
	}
	mediaSvc := media.NewService(storage, cfg.Cloudinary.BaseFolder, cfg.Upload.MaxImageBytes(), log.Component("media"))

	var sheetReader ports.MenuSheetReader
	if cfg.Sheets.CredentialsPath != "" {
		r, err := sheets.NewMenuReader(ctx, cfg.Sheets.CredentialsPath)
		if err != nil {
			log.Error().Err(err).Msg("cliente Google Sheets; importación deshabilitada")
		} else {
			sheetReader = r
		}
	}

	// Avisos al personal: Web Push + Telegram, vía RabbitMQ si está configurado
	var pushSender ports.PushSender
	if cfg.Push.Enabled() {
		pushSender = notify.NewWebPushSender(cfg.Push, &http.Client{Timeout: 10 * time.Second})
	}
	var chatSender ports.ChatSender
	if cfg.Telegram.BotToken != "" {
		tg, err := notify.NewTelegramSender(cfg.Telegram.BotToken)
		if err != nil {
			log.Error().Err(err).Msg("bot de Telegram; avisos por chat deshabilitados")
		} else {
			chatSender = tg
		}
	}
	deliverer := notification.NewDeliverer(branchRepo, settingsRepo, pushRepo, pushSender, chatSender, log.Component("notification"))

	var (
		publisher ports.EventPublisher
		broker    *queue.RabbitMQBroker
		notifyW   *worker.NotificationWorker
	)
	if cfg.Queue.RabbitMQURL != "" {
		broker, err = queue.NewRabbitMQBroker(queue.Config{
			URL:           cfg.Queue.RabbitMQURL,
			MaxRetries:    3,
			RetryDelay:    time.Second,
			PrefetchCount: cfg.Queue.PrefetchCount,
		}, log.Component("rabbitmq"))
		if err != nil {
			log.Error().Err(err).Msg("RabbitMQ no disponible; avisos en proceso")
		} else {
			publisher = broker
			notifyW = worker.NewNotificationWorker(deliverer, broker, 30*time.Second, log.Component("worker"))
			if err := notifyW.Start(); err != nil {
				log.Fatal().Err(err).Msg("worker de avisos")
			}
		}
	}
	dispatcher := notification.NewDispatcher(publisher, deliverer, log.Component("dispatcher"))

	authUC := auth.NewAuthUseCase(userRepo, profileRepo, inviteRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, time.Duration(cfg.Invite.TTLHours)*time.Hour)
	resolver := auth.NewSessionResolver(cfg.JWT.Secret, profileRepo, branchRepo)

	analyticsUC := appanalytics.NewUseCase(txRepo, branchRepo, settingsRepo, infrapdf.NewMarotoPDFGenerator(), loc)

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:            cfg.App.Name,
		BodyLimit:       int(cfg.Upload.MaxImageBytes()) + 1024*1024,
		AllowedOrigins:  cfg.App.AllowedOrigins,
		BranchCookieKey: cfg.Cookie.BranchKey,
		Log:             log.Component("http"),
	})
	if cfg.Cookie.BranchKey == "" {
		log.Warn().Msg("BRANCH_COOKIE_KEY vacío: la cookie de sucursal viaja sin cifrar")
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Restaurante Admin API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Resolver:      resolver,
		BranchUC:      usecase.NewBranchUseCase(branchRepo),
		SettingsUC:    usecase.NewSettingsUseCase(settingsRepo),
		MenuUC:        usecase.NewMenuUseCase(menuRepo, mediaSvc, sheetReader, log.Component("menu")),
		ReservationUC: usecase.NewReservationUseCase(reservationRepo, dispatcher),
		OfferUC:       usecase.NewOfferUseCase(offerRepo, mediaSvc),
		FAQUC:         usecase.NewFAQUseCase(faqRepo),
		GalleryUC:     usecase.NewGalleryUseCase(galleryRepo, mediaSvc),
		EventUC:       usecase.NewPrivateEventUseCase(eventRepo, dispatcher),
		AnalyticsUC:   analyticsUC,
		TransactionUC: usecase.NewTransactionUseCase(txRepo),
		PushUC:        usecase.NewPushUseCase(pushRepo, cfg.Push.VAPIDPublicKey),
		Cookies:       httpRouter.CookieOptions{Secure: cfg.Cookie.Secure},
		ServiceName:   cfg.App.Name,
		FrontendDir:   cfg.App.FrontendDir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	// Avisos en proceso que aún no terminaron
	dispatcher.Wait()
	if notifyW != nil {
		notifyW.Stop()
	}
	if broker != nil {
		if err := broker.Close(); err != nil {
			log.Error().Err(err).Msg("cierre de RabbitMQ")
		}
	}

	log.Info().Msg("aplicación detenida")
}
