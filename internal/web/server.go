// Package web serves the portfolio, the experience dashboard, the JSON API
// and the admin console over gin.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Zachkp/folio/internal/analytics"
	"github.com/Zachkp/folio/internal/auth"
	"github.com/Zachkp/folio/internal/dashboard"
	"github.com/Zachkp/folio/internal/dto"
	"github.com/Zachkp/folio/internal/layout"
	"github.com/Zachkp/folio/internal/mailer"
	"github.com/Zachkp/folio/internal/portfolio"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

type ExperienceStore interface {
	dashboard.Store
	GetByID(ctx context.Context, owner string, id uuid.UUID) (*dto.Experience, error)
	Count(ctx context.Context) (records int64, owners int64, err error)
}

type EducationStore interface {
	ListByOwner(ctx context.Context, owner string) ([]dto.Education, error)
	GetByID(ctx context.Context, owner string, id uuid.UUID) (*dto.Education, error)
	Insert(ctx context.Context, e dto.Education) (dto.Education, error)
	Update(ctx context.Context, e dto.Education) error
	Delete(ctx context.Context, owner string, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type ContactSender interface {
	SendContact(msg mailer.ContactMessage) error
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type AdminCredentials struct {
	Username string
	Password string
}

type Deps struct {
	Verifier   *auth.Verifier
	Experience ExperienceStore
	Education  EducationStore
	Sessions   *dashboard.Sessions
	Layouts    *layout.Registry
	Portfolio  *portfolio.Service
	Tracker    *analytics.Tracker
	Mailer     ContactSender
	DB         Pinger

	Admin AdminCredentials
	// Owner whose stored timeline is shown at "/".
	SiteOwnerID string
}

type Server struct {
	engine *gin.Engine
	deps   Deps

	adminToken string
}

func New(d Deps) (*Server, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:     gin.New(),
		deps:       d,
		adminToken: analytics.RandomToken(),
	}

	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(recovery(), requestLogger(), d.Tracker.Middleware())
	s.engine.StaticFS("/static", http.FS(static))

	s.mountRoutes()

	return s, nil
}

func (s *Server) mountRoutes() {
	r := s.engine

	r.GET("/health", s.health)

	s.mountPortfolio(r)
	s.mountDashboard(r.Group("/dashboard", sameOrigin(), auth.Optional(s.deps.Verifier)))
	s.mountAPI(r.Group("/api", auth.Require(s.deps.Verifier)))
	s.mountAdmin(r)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down HTTP server")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) health(c *gin.Context) {
	if s.deps.DB != nil {
		if err := s.deps.DB.PingContext(c.Request.Context()); err != nil {
			log.Error().Err(err).Msg("health check failed")
			writeError(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

var templateFuncs = template.FuncMap{
	"stamp": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
	"query": url.QueryEscape,
	// dict passes named values to a nested template.
	"dict": func(kv ...any) map[string]any {
		m := make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			if k, ok := kv[i].(string); ok {
				m[k] = kv[i+1]
			}
		}
		return m
	},
}
