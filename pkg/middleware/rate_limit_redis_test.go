package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimitMiddleware_Basic(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	r := gin.New()
	// 0 rps over a long window: exactly one request allowed per window
	r.Use(RedisRateLimitMiddleware(client, 0, 1, time.Hour))
	r.POST("/guestbook", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest("POST", "/guestbook", nil))
	require.Equal(t, http.StatusOK, w1.Code)

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest("POST", "/guestbook", nil))
	require.Equal(t, http.StatusTooManyRequests, w2.Code)
	require.Equal(t, "3600", w2.Header().Get("Retry-After"))

	// the window key carries a TTL so Redis does not accumulate buckets
	keys := m.Keys()
	require.Len(t, keys, 1)
	require.Greater(t, m.TTL(keys[0]), time.Duration(0))
}

func TestRedisRateLimitMiddleware_FailsClosedOnRedisError(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	m.Close()

	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, 1, 1, time.Second))
	r.POST("/contact", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/contact", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRedisRateLimitMiddleware_NilClientFallsBackToMemory(t *testing.T) {
	r := gin.New()
	r.Use(RedisRateLimitMiddleware(nil, 100, 5, time.Second))
	r.POST("/contact", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/contact", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
