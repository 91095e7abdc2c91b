package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	authrepo "github.com/Suraj999-github/MauiBankApp/internal/auth/repository"
	authusecase "github.com/Suraj999-github/MauiBankApp/internal/auth/usecase"
	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
	"github.com/Suraj999-github/MauiBankApp/internal/biometric/platform"
	biorepo "github.com/Suraj999-github/MauiBankApp/internal/biometric/repository"
	biousecase "github.com/Suraj999-github/MauiBankApp/internal/biometric/usecase"
	"github.com/Suraj999-github/MauiBankApp/internal/config"
	"github.com/Suraj999-github/MauiBankApp/pkg/crypto"
	"github.com/Suraj999-github/MauiBankApp/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	cfg      *config.Config
	registry *prometheus.Registry

	store     biorepo.CredentialStore
	redis     *redis.Client
	provider  platform.Provider
	bridge    *platform.DeviceBridge
	biometric biousecase.BiometricUsecase
	accounts  *authrepo.UserStore
	auth      authusecase.AuthUsecase
}

// New assembles every component from the configuration without binding a
// listener.
func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		registry: prometheus.NewRegistry(),
	}
	s.registry.MustRegister(collectors.NewGoCollector())
	s.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	store, err := s.buildStore()
	if err != nil {
		return nil, err
	}
	s.store = store

	if err := s.buildProvider(); err != nil {
		s.Close()
		return nil, err
	}

	s.biometric = biousecase.NewCoordinator(s.provider, s.store,
		biousecase.WithMetrics(biousecase.NewMetrics(s.registry)),
	)

	accounts, err := authrepo.NewUserStore(authrepo.DemoUsers())
	if err != nil {
		s.Close()
		return nil, err
	}
	s.accounts = accounts
	s.auth = authusecase.NewAuthService(
		accounts,
		authrepo.NewSecureSessionStore(s.store),
		s.biometric,
		authusecase.WithLatency(cfg.Auth.LoginDelay),
		authusecase.WithMetrics(authusecase.NewMetrics(s.registry)),
	)

	return s, nil
}

func NewServer(cfg *config.Config) (*http.Server, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}

	// Declare Server config
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
	server.RegisterOnShutdown(s.Close)

	return server, nil
}

func (s *Server) Close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			logger.Error("Failed to close redis client", "error", err)
		}
	}
}

func (s *Server) buildStore() (biorepo.CredentialStore, error) {
	var store biorepo.CredentialStore
	switch s.cfg.Store.Backend {
	case config.StoreFile:
		fs, err := biorepo.NewFileStore(s.cfg.Store.FilePath)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		store = fs
	case config.StoreRedis:
		s.redis = redis.NewClient(&redis.Options{Addr: s.cfg.Store.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.redis.Ping(ctx).Err(); err != nil {
			s.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = biorepo.NewRedisStore(s.redis, s.cfg.Store.RedisPrefix)
	default:
		store = biorepo.NewMemoryStore()
	}

	if s.cfg.Store.EncryptionKey != "" {
		sealer, err := crypto.NewSealer(s.cfg.Store.EncryptionKey)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("init store encryption: %w", err)
		}
		store = biorepo.NewEncryptedStore(store, sealer)
	} else if s.cfg.IsProduction() {
		logger.Warn("Secure store runs without encryption", "backend", s.cfg.Store.Backend)
	}

	if s.cfg.Store.CacheSize > 0 {
		store = biorepo.NewCachedStore(store, s.cfg.Store.CacheSize, s.cfg.Store.CacheTTL)
	}
	return store, nil
}

func (s *Server) buildProvider() error {
	bc := s.cfg.Biometric
	p, ok := platform.ParsePlatform(bc.Platform)
	if !ok {
		return fmt.Errorf("unknown biometric.platform %q", bc.Platform)
	}
	kind := domain.ParseKind(bc.Kind)

	if p == platform.PlatformSimulated {
		opts := []platform.SimulatedOption{
			platform.WithAvailability(bc.Available),
			platform.WithKind(kind),
			platform.WithChallengeDelay(bc.ChallengeDelay),
		}
		if bc.FailureRate > 0 {
			opts = append(opts, platform.WithFaultInjector(platform.RateFaultInjector(bc.FailureRate, time.Now().UnixNano())))
		}
		s.provider = platform.NewSimulatedProvider(opts...)
		return nil
	}

	s.bridge = platform.NewDeviceBridge(p, kind, bc.Available)
	provider, err := s.bridge.Provider()
	if err != nil {
		return err
	}
	s.provider = provider
	return nil
}
