package server

import (
	"net/http"

	authhandler "github.com/Suraj999-github/MauiBankApp/internal/auth/handler"
	biohandler "github.com/Suraj999-github/MauiBankApp/internal/biometric/handler"
	sessionMiddleware "github.com/Suraj999-github/MauiBankApp/internal/middleware"
	settingshandler "github.com/Suraj999-github/MauiBankApp/internal/settings/handler"
	settingsusecase "github.com/Suraj999-github/MauiBankApp/internal/settings/usecase"
	usershandler "github.com/Suraj999-github/MauiBankApp/internal/users/handler"
	usersrepo "github.com/Suraj999-github/MauiBankApp/internal/users/repository"
	usersusecase "github.com/Suraj999-github/MauiBankApp/internal/users/usecase"
	"github.com/Suraj999-github/MauiBankApp/pkg/logger"
	"github.com/Suraj999-github/MauiBankApp/pkg/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "error", v.Error)
				return nil
			}
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XFrameOptions:         "DENY",
		ContentTypeNosniff:    "nosniff",
		XSSProtection:         "1; mode=block",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
		ContentSecurityPolicy: "default-src 'self'",
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(100),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
		},
	}))
	e.Use(middleware.BodyLimit("64KB"))
	sessionMiddleware.InitSessionMiddleware(s.auth, s.cfg.IsProduction())

	e.GET("/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	apiGroup := e.Group("")

	s.setupBiometricRoutes(apiGroup)
	s.setupAuthRoutes(apiGroup)
	s.setupSettingsRoutes(apiGroup)
	s.setupUserRoutes(apiGroup)

	return e
}

func (s *Server) healthHandler(c echo.Context) error {
	ctx := c.Request().Context()
	resp := map[string]any{
		"status":   "up",
		"platform": s.provider.Platform(),
		"store":    s.cfg.Store.Backend,
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			resp["status"] = "down"
			resp["error"] = err.Error()
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) setupBiometricRoutes(apiGroup *echo.Group) {
	bioGroup := apiGroup.Group("/biometric")
	biohandler.NewBiometricHandler(s.biometric).Bind(bioGroup)

	if s.bridge != nil {
		deviceGroup := apiGroup.Group("/device")
		biohandler.NewDeviceHandler(s.bridge).Bind(deviceGroup)
	}
}

func (s *Server) setupAuthRoutes(apiGroup *echo.Group) {
	authHandler := authhandler.NewAuthHandler(s.auth, s.cfg.IsProduction())

	authGroup := apiGroup.Group("/auth")
	authHandler.Bind(authGroup)
}

func (s *Server) setupSettingsRoutes(apiGroup *echo.Group) {
	settings := settingsusecase.NewSecuritySettingsService(s.biometric, s.auth)
	settingsGroup := apiGroup.Group("/settings")
	settingshandler.NewSettingsHandler(settings).Bind(settingsGroup)
}

func (s *Server) setupUserRoutes(apiGroup *echo.Group) {
	userUsecase := usersusecase.NewUserUsecase(
		usersrepo.NewUserStore(s.accounts),
		usersusecase.WithCredentialBinder(s.biometric),
	)
	usersGroup := apiGroup.Group("/users")
	usershandler.NewUserHandler(userUsecase).Bind(usersGroup)
}
