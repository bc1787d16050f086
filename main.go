package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/folio/internal/analytics"
	"github.com/Zachkp/folio/internal/auth"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/dashboard"
	"github.com/Zachkp/folio/internal/layout"
	"github.com/Zachkp/folio/internal/mailer"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/repository/education"
	"github.com/Zachkp/folio/internal/repository/experience"
	"github.com/Zachkp/folio/internal/repository/visitors"
	"github.com/Zachkp/folio/internal/storage"
	"github.com/Zachkp/folio/internal/web"
)

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	setupLogging(cfg)
	gin.SetMode(cfg.GinMode)

	db, err := storage.Open(rootCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	defer db.Close()
	log.Info().Str("dialect", string(storage.DialectFor(cfg.DatabaseURL))).Msg("database ready")

	experienceRepo := experience.NewRepository(db)
	educationRepo := education.NewRepository(db)
	visitorRepo := visitors.NewRepository(db)

	verifier := auth.NewVerifier(auth.Config{
		Secret:  cfg.Auth.JWTSecret,
		JWKSURL: cfg.Auth.JWKSURL,
		Issuer:  cfg.Auth.Issuer,
	})
	if !verifier.Enabled() {
		log.Warn().Msg("no AUTH_JWT_SECRET or AUTH_JWKS_URL set: dashboard and API will reject every caller")
	}

	if cfg.Admin.Password == config.DefaultAdminPassword && gin.Mode() == gin.DebugMode {
		log.Warn().Msg("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}

	layouts := layout.NewRegistry()
	sessions := dashboard.NewSessions(experienceRepo, layouts, cfg.Layout.InlineBreakpoint, cfg.Layout.SessionIdleTimeout)
	tracker := analytics.NewTracker(visitorRepo, cfg.Visitor.Retention)

	server, err := web.New(web.Deps{
		Verifier:   verifier,
		Experience: experienceRepo,
		Education:  educationRepo,
		Sessions:   sessions,
		Layouts:    layouts,
		Portfolio:  portfolio.NewService(portfolio.Demo(), experienceRepo, educationRepo),
		Tracker:    tracker,
		Mailer: mailer.NewSMTP(mailer.Config{
			Host:    cfg.SMTP.Host,
			Port:    cfg.SMTP.Port,
			User:    cfg.SMTP.User,
			Pass:    cfg.SMTP.Pass,
			ToEmail: cfg.SMTP.ToEmail,
		}),
		DB: db,
		Admin: web.AdminCredentials{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
		},
		SiteOwnerID: cfg.SiteOwnerID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("web init failed")
	}

	group, gctx := errgroup.WithContext(rootCtx)

	group.Go(func() error {
		if err := server.Run(gctx, ":"+cfg.Port); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped with error")
			return err
		}
		log.Info().Msg("HTTP server stopped")
		return nil
	})

	group.Go(func() error {
		return sessions.Run(gctx)
	})

	group.Go(func() error {
		ctx, cancel := context.WithTimeout(gctx, time.Minute)
		defer cancel()
		if _, err := tracker.Cleanup(ctx); err != nil {
			log.Warn().Err(err).Msg("visitor retention cleanup failed")
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("shutdown with error")
		os.Exit(1)
	}
	log.Info().Msg("all services stopped")
}

func setupLogging(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.GinMode == gin.DebugMode {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
