package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stylehub_dev_v1_202601/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

func setupGuardedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"code":  0,
			"email": GetUserEmail(c),
			"role":  GetUserRole(c),
		})
	})
	r.GET("/guarded", handlers...)
	return r
}

func performGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== Token 测试 ====================

func TestGenerateTokenPair(t *testing.T) {
	access, refresh, err := GenerateTokenPair(1, "admin@stylehub.com", model.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := ParseToken(access)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "admin@stylehub.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, "access", claims.Subject)

	refreshClaims, err := ParseToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.Subject)
}

func TestParseToken_Invalid(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	// 换密钥签出来的 Token 不认
	old := GetJWTConfig()
	SetJWTConfig(&JWTConfig{
		SecretKey:       "another-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: time.Hour,
		Issuer:          old.Issuer,
	})
	foreign, _ := GenerateAccessToken(1, "x@stylehub.com", model.RoleStaff)
	SetJWTConfig(old)

	_, err = ParseToken(foreign)
	assert.Error(t, err)
}

// ==================== 中间件测试 ====================

func TestJWTAuth(t *testing.T) {
	r := setupGuardedRouter()

	// 没带 Token
	w := performGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 乱写的 Token
	w = performGet(r, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Refresh Token 不能当 Access Token 用
	_, refresh, _ := GenerateTokenPair(1, "staff@stylehub.com", model.RoleStaff)
	w = performGet(r, refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 正常 Access Token
	access, _, _ := GenerateTokenPair(1, "staff@stylehub.com", model.RoleStaff)
	w = performGet(r, access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "staff@stylehub.com")
}

func TestRequireRole(t *testing.T) {
	// 管理路由放行 admin/staff
	r := setupGuardedRouter(model.RoleAdmin, model.RoleStaff)

	adminToken, _, _ := GenerateTokenPair(1, "admin@stylehub.com", model.RoleAdmin)
	staffToken, _, _ := GenerateTokenPair(2, "staff@stylehub.com", model.RoleStaff)
	customerToken, _, _ := GenerateTokenPair(3, "customer@stylehub.com", model.RoleCustomer)

	assert.Equal(t, http.StatusOK, performGet(r, adminToken).Code)
	assert.Equal(t, http.StatusOK, performGet(r, staffToken).Code)
	assert.Equal(t, http.StatusForbidden, performGet(r, customerToken).Code)

	// 看板路由只放行 admin
	dash := setupGuardedRouter(model.RoleAdmin)
	assert.Equal(t, http.StatusOK, performGet(dash, adminToken).Code)
	assert.Equal(t, http.StatusForbidden, performGet(dash, staffToken).Code)
	assert.Equal(t, http.StatusForbidden, performGet(dash, customerToken).Code)
}
