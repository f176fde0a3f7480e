package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hypergo-properties/pkg/config"

	"github.com/gin-gonic/gin"
)

func TestSetupCORSUsesConfiguredOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.AllowedOrigins = []string{"https://app.example"}

	r := gin.New()
	r.Use(setupCORS(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		origin string
		want   string
	}{
		{origin: "https://app.example", want: "https://app.example"},
		{origin: "http://localhost:3000", want: ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", tt.origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: Allow-Origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}
