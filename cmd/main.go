package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"foundercompass/api/handler"
	apiMiddleware "foundercompass/api/middleware"
	"foundercompass/api/routes"
	"foundercompass/config"
	"foundercompass/internal/catalog"
	"foundercompass/internal/repository"
	"foundercompass/internal/service"
	"foundercompass/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("database unavailable")
	}

	questionCatalog, err := catalog.Load()
	if err != nil {
		logger.WithError(err).Fatal("question bank unreadable")
	}

	validate := validator.New()

	jwtManager := utils.JWTManager{
		Secret:         cfg.JWTSecret,
		Issuer:         cfg.JWTIssuer,
		AccessTokenTTL: 30 * time.Minute,
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	reportRepo := repository.NewReportRepository(db)
	eventRepo := repository.NewTrackingEventRepository(db)
	unitOfWork := repository.NewUnitOfWork(db)

	var notifier service.ReportNotifier
	if resendNotifier := service.NewResendReportNotifier(cfg.ResendAPIKey, cfg.ReportEmailFrom); resendNotifier != nil {
		notifier = resendNotifier
	}

	authService := service.NewAuthService(
		userRepo,
		service.BcryptPasswordHasher{},
		service.JWTAccessIssuer{Manager: &jwtManager},
		service.RealClock{},
		logger,
	)
	sessionService := service.NewSessionService(
		userRepo,
		sessionRepo,
		unitOfWork,
		eventRepo,
		questionCatalog,
		service.NewRandomInsightGenerator(time.Now().UnixNano()),
		notifier,
		service.RealClock{},
		logger,
	)
	reportService := service.NewReportService(reportRepo)

	authHandler := handler.NewAuthHandler(authService, validate)
	authHandler.CookieDomain = cfg.CookieDomain
	authHandler.SecureCookies = cfg.SecureCookies

	sessionHandler := handler.NewSessionHandler(sessionService, validate)
	reportHandler := handler.NewReportHandler(reportService)
	eventHandler := handler.NewEventHandler(sessionService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &jwtManager, Users: userRepo}
	router := routes.NewRouter(app, authHandler, sessionHandler, reportHandler, eventHandler, authMiddleware)
	router.RegisterRoutes()

	if cfg.DropOffAfter > 0 {
		go runDropOffSweep(context.Background(), sessionService, cfg.DropOffAfter, logger)
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

// runDropOffSweep periodically marks sessions abandoned in "started" as
// dropped off. Only active when SESSION_DROPOFF_AFTER is configured.
func runDropOffSweep(ctx context.Context, sessions *service.SessionService, after time.Duration, logger *logrus.Logger) {
	interval := after
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			swept, err := sessions.SweepDroppedOff(ctx, after)
			if err != nil {
				logger.WithError(err).Warn("drop-off sweep failed")
				continue
			}
			if swept > 0 {
				logger.WithField("sessions", swept).Info("marked stale sessions dropped off")
			}
		}
	}
}
