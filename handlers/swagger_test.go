package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSwaggerEndpoints(t *testing.T) {
	g := gin.New()
	RegisterSwagger(g)

	req := httptest.NewRequest("GET", "/swagger/index.html", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "swagger-ui")

	req2 := httptest.NewRequest("GET", "/swagger/doc.json", nil)
	w2 := httptest.NewRecorder()
	g.ServeHTTP(w2, req2)
	require.Equal(t, 200, w2.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &doc), "doc.json must be a JSON object")
	require.Equal(t, "3.0.0", doc["openapi"])
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	for _, p := range []string{"/api/station", "/api/equipment/{id}", "/api/news", "/api/guestbook", "/api/contact", "/api/status"} {
		require.Contains(t, paths, p)
	}
}
