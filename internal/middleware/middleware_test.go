package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kostec-kr/erp-backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestLogger 测试日志中间件
func TestLogger(t *testing.T) {
	router := gin.New()
	router.Use(Logger())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("期望状态码 200, 实际 %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("期望 X-Request-ID 头存在")
	}
}

// TestLoggerWithRequestID 测试日志中间件使用已有的请求 ID
func TestLoggerWithRequestID(t *testing.T) {
	router := gin.New()
	router.Use(Logger())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "custom-request-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "custom-request-id" {
		t.Errorf("期望 X-Request-ID 为 custom-request-id, 实际 %s", got)
	}
}

// TestRecovery 测试恐慌恢复中间件
func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("测试恐慌")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("期望状态码 500, 实际 %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if _, ok := body["code"]; !ok {
		t.Error("恐慌响应应为标准错误信封")
	}
}

// TestCORS 测试跨域中间件
func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://erp.kostec.kr")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://erp.kostec.kr" {
		t.Errorf("期望回显 Origin, 实际 %q", got)
	}
}

// TestCORSPreflight 测试预检请求
func TestCORSPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS())

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://erp.kostec.kr")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("预检请求期望状态码 204, 实际 %d", w.Code)
	}
}

func newTestTokenService(expiry time.Duration) service.TokenService {
	return service.NewTokenService(&service.TokenServiceConfig{
		Secret:       "middleware-test-secret",
		Issuer:       "erp-backend-test",
		AccessExpiry: expiry,
	})
}

// TestJWTAuth 测试认证中间件
func TestJWTAuth(t *testing.T) {
	tokenService := newTestTokenService(time.Hour)

	router := gin.New()
	router.Use(JWTAuth(tokenService))
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	token, err := tokenService.GenerateToken(42, "kimcs", "admin")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("有效令牌期望状态码 200, 实际 %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if body["user_id"] != float64(42) {
		t.Errorf("上下文中的 user_id = %v, 期望 42", body["user_id"])
	}
}

// TestJWTAuthMissingToken 测试缺失令牌
func TestJWTAuthMissingToken(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(newTestTokenService(time.Hour)))
	router.GET("/protected", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("缺失令牌期望状态码 401, 实际 %d", w.Code)
	}
}

// TestJWTAuthMalformedHeader 测试格式错误的认证头
func TestJWTAuthMalformedHeader(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(newTestTokenService(time.Hour)))
	router.GET("/protected", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("格式错误的认证头期望状态码 401, 实际 %d", w.Code)
	}
}

// TestJWTAuthExpiredToken 测试过期令牌
func TestJWTAuthExpiredToken(t *testing.T) {
	tokenService := newTestTokenService(-time.Minute)

	router := gin.New()
	router.Use(JWTAuth(tokenService))
	router.GET("/protected", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	token, err := tokenService.GenerateToken(1, "kimcs", "staff")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("过期令牌期望状态码 401, 实际 %d", w.Code)
	}
}
