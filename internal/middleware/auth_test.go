package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizkey_backend/internal/config"
	"quizkey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func newAdminRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: secret, ExpireTime: time.Hour}}

	router := gin.New()
	router.GET("/admin", AdminAuthMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAdminAuthMiddleware(t *testing.T) {
	router := newAdminRouter("test-secret")

	token, err := util.GenerateAdminJWT("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	forged, err := util.GenerateAdminJWT("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate forged token: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + forged, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, w.Code, tc.want)
		}
	}
}
