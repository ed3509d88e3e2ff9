package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/codehire/codehire-api/internal/analysis"
	"github.com/codehire/codehire-api/internal/config"
	"github.com/codehire/codehire-api/internal/handler"
	"github.com/codehire/codehire-api/internal/mailer"
	"github.com/codehire/codehire-api/internal/repository"
	"github.com/codehire/codehire-api/internal/service"
	"github.com/codehire/codehire-api/internal/utils"
	"github.com/codehire/codehire-api/pkg/observability"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

// Option overrides a default collaborator, used by tests to swap the real
// SMTP relay and model API for fakes.
type Option func(*collaborators)

type collaborators struct {
	sender   mailer.Sender
	provider analysis.Provider
}

func WithMailer(sender mailer.Sender) Option {
	return func(c *collaborators) { c.sender = sender }
}

func WithAnalysisProvider(provider analysis.Provider) Option {
	return func(c *collaborators) { c.provider = provider }
}

func NewApp(infra Infrastructure, cfg *config.Config, opts ...Option) *App {
	deps := &collaborators{
		sender:   mailer.NewSMTPSender(cfg.SMTP),
		provider: analysis.NewGroqClient(cfg.Groq.APIKey, cfg.Groq.Model),
	}
	for _, opt := range opts {
		opt(deps)
	}

	repos := repository.NewRepositories(infra.Mongo())

	sessions := utils.NewSessionManager(cfg.JWT.Secret, cfg.JWT.SessionExpiry.Duration)

	authService := service.NewAuthService(
		repos.User,
		repos.Otp,
		sessions,
		deps.sender,
		cfg.Security.BCryptCost,
		cfg.Security.OTPExpiry.Duration,
	)
	activityService := service.NewActivityService(repos.Activity)

	healthChecker := NewHealthChecker(infra)

	production := cfg.IsProduction()
	cookieMaxAge := int(cfg.JWT.SessionExpiry.Duration.Seconds())

	authHandler := handler.NewAuthHandler(authService, infra.Logger(), cookieMaxAge, production)
	activityHandler := handler.NewActivityHandler(activityService, infra.Logger(), production)
	analysisHandler := handler.NewAnalysisHandler(deps.provider, activityService, infra.Logger())

	router := gin.Default()
	router.Use(otelgin.Middleware("codehire-api"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, authHandler, activityHandler, analysisHandler, authService, healthChecker, infra.MetricsHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	activityHandler *handler.ActivityHandler,
	analysisHandler *handler.AnalysisHandler,
	authService service.AuthService,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/send-otp", authHandler.SendOTP)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authHandler.Me)
			auth.POST("/change-password", handler.SessionMiddleware(authService), authHandler.ChangePassword)
			auth.POST("/logout", authHandler.Logout)
		}

		protected := api.Group("")
		protected.Use(handler.SessionMiddleware(authService))
		{
			protected.POST("/activity/track", activityHandler.Track)
			protected.GET("/profile/stats", activityHandler.Stats)
			protected.POST("/code-review", analysisHandler.CodeReview)
			protected.POST("/resume-analysis", analysisHandler.ResumeAnalysis)
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
