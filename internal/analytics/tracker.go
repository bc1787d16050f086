// Package analytics records privacy-conscious page views: addresses are
// salted and hashed before they reach storage, and DNT is honoured.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Zachkp/folio/internal/dto"
)

type Store interface {
	Insert(ctx context.Context, v dto.VisitorMetric) error
	Stats(ctx context.Context, now time.Time, recent int) (*dto.VisitorStats, error)
	Recent(ctx context.Context, limit int) ([]dto.VisitorMetric, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

var untrackedPrefixes = []string{
	"/static/", "/images/", "/admin/", "/dashboard", "/api/", "/favicon", "/privacy", "/health",
}

type Tracker struct {
	store     Store
	salt      string
	retention time.Duration
	now       func() time.Time
}

// NewTracker uses a fresh random salt, so hashes are stable only for the life of the process.
func NewTracker(store Store, retention time.Duration) *Tracker {
	return &Tracker{
		store:     store,
		salt:      RandomToken(),
		retention: retention,
		now:       time.Now,
	}
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal().Err(err).Msg("failed to read random bytes")
	}
	return hex.EncodeToString(b)
}

// HashIP is consistent per address within a process, and truncated for storage.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func Tracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// Middleware records page views in the background.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != "GET" || !Tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		v := dto.VisitorMetric{
			HashedIP:  t.HashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: t.now(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := t.store.Insert(ctx, v); err != nil {
				log.Error().Err(err).Msg("error recording visitor")
			}
		}()

		c.Next()
	}
}

func (t *Tracker) Stats(ctx context.Context) (*dto.VisitorStats, error) {
	return t.store.Stats(ctx, t.now(), 50)
}

func (t *Tracker) Recent(ctx context.Context, limit int) ([]dto.VisitorMetric, error) {
	return t.store.Recent(ctx, limit)
}

// Cleanup deletes page views older than the retention window.
func (t *Tracker) Cleanup(ctx context.Context) (int64, error) {
	n, err := t.store.DeleteBefore(ctx, t.now().Add(-t.retention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info().Int64("rows", n).Dur("retention", t.retention).Msg("privacy cleanup removed old visitor records")
	}
	return n, nil
}
