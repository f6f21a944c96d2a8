package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/4k6ag/radio-station/backend/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/api/news", func(c *gin.Context) { c.JSON(200, gin.H{}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/news", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/news", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestMetricsUsesRoutePattern(t *testing.T) {
	r := gin.New()
	r.Use(RequestMetrics())
	r.DELETE("/api/equipment/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	counter := metrics.HTTPRequests.WithLabelValues("/api/equipment/:id", "DELETE", "404")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/equipment/abc", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, before+1, testutil.ToFloat64(counter))
}
