// Command googleauth runs the standalone sign-in service: the login
// routes, a Prometheus metrics endpoint, and a health probe. The
// provisioning collaborator is a logging stub; embedding applications
// replace it with their own account layer.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/socialauth/googleauth/internal/handlers"
	"github.com/socialauth/googleauth/internal/metrics"
	"github.com/socialauth/googleauth/pkg/authflow"
	"github.com/socialauth/googleauth/pkg/logger"
	"github.com/socialauth/googleauth/pkg/redis"
	"github.com/socialauth/googleauth/pkg/sessionstate"
	"github.com/socialauth/googleauth/pkg/settings"
)

type serverConfig struct {
	Addr            string        `env:"GOOGLE_AUTH_HTTP_ADDR" envDefault:":8080"`
	RedirectURL     string        `env:"GOOGLE_AUTH_REDIRECT_URL"`
	SettingsFile    string        `env:"GOOGLE_AUTH_SETTINGS_FILE"`
	SessionRedisURL string        `env:"GOOGLE_AUTH_SESSION_REDIS_URL"`
	LoginPath       string        `env:"GOOGLE_AUTH_LOGIN_PATH"`
	SecureCookies   bool          `env:"GOOGLE_AUTH_SECURE_COOKIES"`
	LogLevel        slog.Level    `env:"GOOGLE_AUTH_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"GOOGLE_AUTH_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Sentry logger.SentryConfig
}

func main() {
	root := &cobra.Command{
		Use:           "googleauth",
		Short:         "Google sign-in service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Optional; real deployments set the environment directly.
			_ = godotenv.Load()

			var cfg serverConfig
			if err := env.Parse(&cfg); err != nil {
				return fmt.Errorf("parse config: %w", err)
			}
			if cfg.RedirectURL == "" {
				return errors.New("GOOGLE_AUTH_REDIRECT_URL is required")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg serverConfig) error {
	log := logger.NewWithSentry(cfg.Sentry, cfg.LogLevel)

	var provider settings.Provider
	if cfg.SettingsFile != "" {
		provider = settings.NewFile(cfg.SettingsFile)
	} else {
		provider = settings.NewEnv()
	}

	store, closeStore, err := newSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	controller := authflow.NewController(provider, store, &loggingProvisioner{log: log},
		authflow.WithRedirectURL(cfg.RedirectURL),
		authflow.WithLogger(log),
	)

	var handlerOpts []handlers.Option
	if cfg.LoginPath != "" {
		handlerOpts = append(handlerOpts, handlers.WithLoginPath(cfg.LoginPath))
	}
	handlerOpts = append(handlerOpts, handlers.WithSecureCookies(cfg.SecureCookies))
	login := handlers.New(controller, log, handlerOpts...)

	if err := metrics.Register(nil); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Mount("/", login.Routes())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newSessionStore picks Redis when a connection URL is configured, the
// in-process store otherwise. The returned func releases the store.
func newSessionStore(ctx context.Context, cfg serverConfig, log *slog.Logger) (sessionstate.Store, func(), error) {
	if cfg.SessionRedisURL == "" {
		mem := sessionstate.NewMemory()
		return mem, func() { mem.Close() }, nil
	}

	client, err := redis.Open(ctx, cfg.SessionRedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect session store: %w", err)
	}
	log.Info("session state backed by redis")
	return sessionstate.NewRedis(client), func() { _ = client.Close() }, nil
}
