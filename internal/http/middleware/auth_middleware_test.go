package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/Duggineniakhil/Vectra/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(tokenSvc domain.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", NewAuthMW(tokenSvc).WithJWT(), func(c *gin.Context) {
		id, _ := UserID(c)
		role, _ := UserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": role})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokenSvc := auth.NewJWTService("access-secret", "refresh-secret", "vectra-test", 15*time.Minute, time.Hour)
	userID := uuid.New()

	access, err := tokenSvc.GenerateAccessToken(userID, domain.RoleDriver)
	require.NoError(t, err)
	refresh, err := tokenSvc.GenerateRefreshToken(userID, domain.RoleDriver)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"valid access token", "Bearer " + access, http.StatusOK},
		{"lowercase scheme", "bearer " + access, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + access, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized},
	}

	r := newGuardedRouter(tokenSvc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
				assert.Contains(t, w.Body.String(), `"role":"DRIVER"`)
			}
		})
	}
}
