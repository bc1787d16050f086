package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Zachkp/folio/internal/auth"
	"github.com/Zachkp/folio/internal/dashboard"
	"github.com/Zachkp/folio/internal/dto"
)

// ViewportHeader lets any dashboard request report the client's width.
const ViewportHeader = "Viewport-Width"

func (s *Server) mountDashboard(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard/experience")
	})

	g.GET("/experience", s.withScreen(s.experiencePage))
	g.POST("/experience/new", s.withScreen(s.openCreate))
	g.POST("/experience/:id/edit", s.withScreen(s.openEdit))
	g.POST("/experience/form", s.withScreen(s.updateForm))
	g.POST("/experience/save", s.withScreen(s.saveExperience))
	g.POST("/experience/cancel", s.withScreen(s.cancelForm))
	g.DELETE("/experience/:id", s.withScreen(s.deleteExperience))
	g.POST("/viewport", s.withScreen(s.viewport))
}

type screenHandler func(c *gin.Context, sc *dashboard.Screen, n *toasts)

// withScreen resolves the caller's screen. Without an identity the
// dashboard stays in its loading state.
func (s *Server) withScreen(h screenHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.FromContext(c)
		if !ok {
			if c.Request.Method == http.MethodGet && c.GetHeader("HX-Request") == "" {
				c.HTML(http.StatusOK, "dashboard-loading", nil)
				return
			}
			c.HTML(http.StatusUnauthorized, "loading", nil)
			return
		}

		sc := s.deps.Sessions.Get(id.UserID)
		if w, err := strconv.Atoi(c.GetHeader(ViewportHeader)); err == nil {
			s.deps.Layouts.For(id.UserID).Publish(w)
		}

		n := &toasts{}
		// a screen created after eviction or restart has no list yet
		if c.Request.Method != http.MethodGet && !sc.Loaded() {
			_ = sc.Reload(c.Request.Context(), n)
		}

		h(c, sc, n)
	}
}

// sameOrigin admits dashboard writes only as HTMX requests from this host.
func sameOrigin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		if origin := c.GetHeader("Origin"); origin != "" {
			u, err := url.Parse(origin)
			if err != nil || u.Host != c.Request.Host {
				log.Warn().Str("origin", origin).Str("path", c.Request.URL.Path).Msg("rejected cross-origin dashboard request")
				writeError(c, http.StatusForbidden, "FORBIDDEN", "cross-origin request rejected")
				return
			}
		}
		if c.GetHeader("HX-Request") != "true" {
			writeError(c, http.StatusForbidden, "FORBIDDEN", "dashboard changes must come from the dashboard page")
			return
		}

		c.Next()
	}
}

func (s *Server) renderPanel(c *gin.Context, sc *dashboard.Screen, n *toasts) {
	n.flush(c)
	c.HTML(http.StatusOK, "experience-panel", panelData(sc))
}

func panelData(sc *dashboard.Screen) gin.H {
	return gin.H{
		"View":   sc.View(),
		"Prompt": dashboard.DeletePrompt,
	}
}

func (s *Server) experiencePage(c *gin.Context, sc *dashboard.Screen, n *toasts) {
	_ = sc.Reload(c.Request.Context(), n)
	n.flush(c)
	c.HTML(http.StatusOK, "dashboard", panelData(sc))
}

func (s *Server) openCreate(c *gin.Context, sc *dashboard.Screen, n *toasts) {
	sc.OpenCreate()
	s.renderPanel(c, sc, n)
}

func (s *Server) openEdit(c *gin.Context, sc *dashboard.Screen, n *toasts) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || !sc.OpenEdit(id) {
		n.Failure("Experience entry not found")
	}
	s.renderPanel(c, sc, n)
}

func (s *Server) updateForm(c *gin.Context, sc *dashboard.Screen, n *toasts) {
	var f dto.ExperienceForm
	if err := c.ShouldBind(&f); err != nil {
		n.Failure(err.Error())
	} else {
		sc.UpdateForm(f)
	}
	s.renderPanel(c, sc, n)
}

func (s *Server) saveExperience(c *gin.Context, sc *dashboard.Screen, n *toasts) {
	var f dto.ExperienceForm
	if err := c.ShouldBind(&f); err != nil {
		n.Failure(err.Error())
		s.renderPanel(c, sc, n)
		return
	}
	sc.Submit(c.Request.Context(), f, n)
	s.renderPanel(c, sc, n)
}

func (s *Server) cancelForm(c *gin.Context, sc *dashboard.Screen, n *toasts) {
	sc.CloseForm()
	s.renderPanel(c, sc, n)
}

// deleteExperience only proceeds when the browser prompt was accepted,
// which the page signals with confirm=true.
func (s *Server) deleteExperience(c *gin.Context, sc *dashboard.Screen, n *toasts) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		n.Failure("Experience entry not found")
		s.renderPanel(c, sc, n)
		return
	}

	confirmed := c.Query("confirm") == "true" || c.PostForm("confirm") == "true"
	sc.Delete(c.Request.Context(), id, dashboard.ConfirmFunc(func(string) bool {
		return confirmed
	}), n)
	s.renderPanel(c, sc, n)
}

func (s *Server) viewport(c *gin.Context, sc *dashboard.Screen, n *toasts) {
	if w, err := strconv.Atoi(c.PostForm("width")); err == nil {
		s.deps.Layouts.For(sc.Owner()).Publish(w)
	}
	s.renderPanel(c, sc, n)
}
