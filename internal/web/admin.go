package web

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Zachkp/folio/internal/dto"
)

const adminCookie = "admin_token"

// adminStats is the visitor summary plus how much the dashboard holds.
type adminStats struct {
	*dto.VisitorStats
	ExperienceRecords int64 `json:"experience_records"`
	ExperienceOwners  int64 `json:"experience_owners"`
	EducationRecords  int64 `json:"education_records"`
}

func (s *Server) mountAdmin(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy", gin.H{"title": "Privacy Policy"})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login", gin.H{"title": "Admin Login"})
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	g := r.Group("/admin", s.requireAdmin())

	g.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			log.Error().Err(err).Msg("loading admin stats")
			c.HTML(http.StatusInternalServerError, "admin-error", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard", gin.H{"stats": stats})
	})

	g.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	g.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			storeError(c, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Info().Msg("admin stats exported")
		c.JSON(http.StatusOK, stats)
	})

	g.GET("/visitors", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))
		visitors, err := s.deps.Tracker.Recent(c.Request.Context(), limit)
		if err != nil {
			log.Error().Err(err).Msg("loading visitors")
			c.HTML(http.StatusInternalServerError, "admin-error", gin.H{"error": "Failed to load visitors"})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors", gin.H{"visitors": visitors})
	})

	g.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.deps.Tracker.Cleanup(c.Request.Context())
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup completed", "deleted": n})
	})
}

func (s *Server) adminLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	ip := s.deps.Tracker.HashIP(c.ClientIP())

	if !equal(username, s.deps.Admin.Username) || !equal(password, s.deps.Admin.Password) {
		log.Warn().Str("client", ip).Msg("failed admin login attempt")
		c.HTML(http.StatusUnauthorized, "admin-login", gin.H{"error": "Invalid credentials"})
		return
	}

	c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
	log.Info().Str("client", ip).Msg("admin login successful")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminStats(c *gin.Context) (*adminStats, error) {
	ctx := c.Request.Context()

	visitors, err := s.deps.Tracker.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats := &adminStats{VisitorStats: visitors}

	if stats.ExperienceRecords, stats.ExperienceOwners, err = s.deps.Experience.Count(ctx); err != nil {
		return nil, err
	}
	if stats.EducationRecords, err = s.deps.Education.Count(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

func equal(a, b string) bool {
	return b != "" && subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
