package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the station API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>4K6AG Radio Station API - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// OpenAPI document for the public station API.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "4K6AG Radio Station API", "version": "1.0.0" },
  "paths": {
    "/api/": { "get": { "summary": "API liveness message", "responses": { "200": { "description": "running" } } } },
    "/api/station": {
      "get": { "summary": "Station information", "responses": { "200": { "description": "station" }, "404": { "description": "not found" } } },
      "put": { "summary": "Partially update station information", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"operator":{"type":"string"},"location":{"type":"string"},"grid":{"type":"string"},"license":{"type":"string"},"status":{"type":"string","enum":["online","offline"]},"frequency":{"type":"string","nullable":true},"mode":{"type":"string","nullable":true}}}}}}, "responses": { "200": { "description": "updated station" }, "404": { "description": "not found" }, "422": { "description": "validation failed" } } }
    },
    "/api/status": {
      "get": { "summary": "Live station status", "responses": { "200": { "description": "status" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update live status", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["status"],"properties":{"status":{"type":"string","enum":["online","offline"]},"frequency":{"type":"string","nullable":true},"mode":{"type":"string","nullable":true}}}}}}, "responses": { "200": { "description": "status" }, "404": { "description": "not found" }, "422": { "description": "validation failed" } } }
    },
    "/api/equipment": {
      "get": { "summary": "List equipment (max 100)", "responses": { "200": { "description": "equipment list" } } },
      "post": { "summary": "Add equipment", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["type","name","specs"],"properties":{"type":{"type":"string","enum":["transceiver","antenna","amplifier","other"]},"name":{"type":"string"},"specs":{"type":"string"},"power":{"type":"string"},"gain":{"type":"string"},"bands":{"type":"string"}}}}}}, "responses": { "200": { "description": "created" }, "422": { "description": "validation failed" } } }
    },
    "/api/equipment/{id}": {
      "get": { "summary": "Get equipment", "responses": { "200": { "description": "equipment" }, "404": { "description": "not found" } } },
      "put": { "summary": "Partially update equipment", "responses": { "200": { "description": "updated" }, "404": { "description": "not found" }, "422": { "description": "validation failed" } } },
      "delete": { "summary": "Delete equipment", "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/qsl-cards": {
      "get": { "summary": "List QSL cards, newest year first", "responses": { "200": { "description": "cards" } } },
      "post": { "summary": "Add QSL card", "responses": { "200": { "description": "created" }, "422": { "description": "validation failed" } } }
    },
    "/api/achievements": {
      "get": { "summary": "List achievements, newest year first", "responses": { "200": { "description": "achievements" } } },
      "post": { "summary": "Add achievement", "responses": { "200": { "description": "created" }, "422": { "description": "validation failed" } } }
    },
    "/api/news": {
      "get": { "summary": "Paginated news, newest first", "parameters": [{"name":"limit","in":"query","schema":{"type":"integer","minimum":1,"maximum":50,"default":10}},{"name":"offset","in":"query","schema":{"type":"integer","minimum":0,"default":0}}], "responses": { "200": { "description": "{news, total}" }, "422": { "description": "bad paging" } } },
      "post": { "summary": "Add news", "responses": { "200": { "description": "created" }, "422": { "description": "validation failed" } } }
    },
    "/api/gallery": {
      "get": { "summary": "List gallery, newest first", "responses": { "200": { "description": "gallery" } } },
      "post": { "summary": "Add gallery item", "responses": { "200": { "description": "created" }, "422": { "description": "validation failed" } } }
    },
    "/api/guestbook": {
      "get": { "summary": "Paginated approved guestbook entries", "parameters": [{"name":"limit","in":"query","schema":{"type":"integer","minimum":1,"maximum":100,"default":20}},{"name":"offset","in":"query","schema":{"type":"integer","minimum":0,"default":0}}], "responses": { "200": { "description": "{entries, total}" }, "422": { "description": "bad paging" } } },
      "post": { "summary": "Sign the guestbook", "responses": { "200": { "description": "created" }, "422": { "description": "validation failed" }, "429": { "description": "rate limited" } } }
    },
    "/api/contact": {
      "post": { "summary": "Submit a contact or QSL request", "responses": { "200": { "description": "{success, message, id}" }, "422": { "description": "validation failed" }, "429": { "description": "rate limited" } } }
    },
    "/api/contact-requests": {
      "get": { "summary": "Admin listing of contact requests", "parameters": [{"name":"limit","in":"query","schema":{"type":"integer","minimum":1,"maximum":100,"default":50}}], "responses": { "200": { "description": "requests" } } }
    },
    "/api/uploads": {
      "post": { "summary": "Upload an image (multipart field file)", "responses": { "200": { "description": "{key, url}" }, "422": { "description": "not an image" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
