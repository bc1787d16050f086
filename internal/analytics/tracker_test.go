package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/dto"
)

type memStore struct {
	mu     sync.Mutex
	views  []dto.VisitorMetric
	cutoff time.Time
	added  chan struct{}
}

func (m *memStore) Insert(_ context.Context, v dto.VisitorMetric) error {
	m.mu.Lock()
	m.views = append(m.views, v)
	m.mu.Unlock()
	m.added <- struct{}{}
	return nil
}

func (m *memStore) Stats(context.Context, time.Time, int) (*dto.VisitorStats, error) {
	return &dto.VisitorStats{}, nil
}

func (m *memStore) Recent(context.Context, int) ([]dto.VisitorMetric, error) { return nil, nil }

func (m *memStore) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.cutoff = cutoff
	return 3, nil
}

func TestHashIPIsStableAndSalted(t *testing.T) {
	a := NewTracker(&memStore{}, time.Hour)
	b := NewTracker(&memStore{}, time.Hour)

	assert.Len(t, a.HashIP("203.0.113.7"), 16)
	assert.Equal(t, a.HashIP("203.0.113.7"), a.HashIP("203.0.113.7"))
	assert.NotEqual(t, a.HashIP("203.0.113.7"), a.HashIP("203.0.113.8"))
	assert.NotEqual(t, a.HashIP("203.0.113.7"), b.HashIP("203.0.113.7"))
}

func TestTracked(t *testing.T) {
	assert.True(t, Tracked("/"))
	assert.True(t, Tracked("/portfolio/user_1"))
	assert.False(t, Tracked("/static/app.js"))
	assert.False(t, Tracked("/admin/dashboard"))
	assert.False(t, Tracked("/dashboard/experience"))
	assert.False(t, Tracked("/api/experience"))
}

func TestMiddlewareRecordsAndRespectsDNT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &memStore{added: make(chan struct{}, 4)}
	tracker := NewTracker(store, time.Hour)

	r := gin.New()
	r.Use(tracker.Middleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "home") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "test-agent")
	r.ServeHTTP(httptest.NewRecorder(), req)

	select {
	case <-store.added:
	case <-time.After(2 * time.Second):
		t.Fatal("visit was not recorded")
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.views, 1)
	assert.Equal(t, "/", store.views[0].Path)
	assert.Equal(t, "test-agent", store.views[0].UserAgent)
	assert.Len(t, store.views[0].HashedIP, 16)
}

func TestCleanupUsesRetention(t *testing.T) {
	store := &memStore{}
	tracker := NewTracker(store, 24*time.Hour)
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return now }

	n, err := tracker.Cleanup(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.Equal(t, now.Add(-24*time.Hour), store.cutoff)
}
