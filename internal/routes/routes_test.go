package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/VidaPediatria/clinic-api/internal/cache"
	"github.com/VidaPediatria/clinic-api/internal/config"
)

const testSecret = "test-secret"

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	cfg := &config.Config{JWTSecret: testSecret}
	RegisterRoutes(r, nil, cfg, cache.New(""))
	return r
}

func signToken(t *testing.T, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(5),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func TestInventoryList_RequiresAuth(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInventoryList_DeniedForNonAdminRoles(t *testing.T) {
	r := testRouter()

	for _, role := range []string{"receptionist", "doctor", "lab_technician"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, role))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, role)
		assert.Contains(t, w.Body.String(), "access_denied", role)
	}
}

func TestAuditLogs_DeniedForNonAdminRoles(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/audit-logs", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "receptionist"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access_denied")
}
