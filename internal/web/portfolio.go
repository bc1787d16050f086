package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Zachkp/folio/internal/mailer"
)

func (s *Server) mountPortfolio(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		s.renderPortfolio(c, s.deps.SiteOwnerID)
	})
	r.GET("/portfolio/:userId", func(c *gin.Context) {
		s.renderPortfolio(c, c.Param("userId"))
	})

	// HTMX fragments; ?user= selects whose timeline to show.
	r.GET("/work-content", func(c *gin.Context) {
		p := s.deps.Portfolio.Profile(c.Request.Context(), s.fragmentOwner(c))
		c.HTML(http.StatusOK, "work-content", gin.H{"entries": p.Experience})
	})
	r.GET("/education-content", func(c *gin.Context) {
		p := s.deps.Portfolio.Profile(c.Request.Context(), s.fragmentOwner(c))
		c.HTML(http.StatusOK, "education-content", gin.H{"entries": p.Education})
	})

	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact-form", gin.H{"title": "Contact Me"})
	})
	r.POST("/contact", s.contact)
}

func (s *Server) fragmentOwner(c *gin.Context) string {
	if user := c.Query("user"); user != "" {
		return user
	}
	return s.deps.SiteOwnerID
}

func (s *Server) renderPortfolio(c *gin.Context, userID string) {
	c.HTML(http.StatusOK, "index", gin.H{
		"profile": s.deps.Portfolio.Profile(c.Request.Context(), userID),
		"userID":  userID,
	})
}

func (s *Server) contact(c *gin.Context) {
	msg := mailer.ContactMessage{
		Name:    strings.TrimSpace(c.PostForm("fullName")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": "Please fill in your name, email and message.",
		})
		return
	}
	if err := msg.Validate(); err != nil {
		log.Warn().Err(err).Msg("contact form rejected")
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": "Please enter a valid name and email address.",
		})
		return
	}

	if err := s.deps.Mailer.SendContact(msg); err != nil {
		log.Warn().Err(err).Msg("contact form delivery failed")
		c.HTML(http.StatusOK, "contact-error", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
