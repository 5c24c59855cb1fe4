package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hris-admin/internal/middleware"
	"go-hris-admin/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRequestID(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(contextutil.RequestIDHeader, "rid-7")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-7", w.Body.String())
		assert.Equal(t, "rid-7", w.Header().Get(contextutil.RequestIDHeader))
	})

	t.Run("mints one when missing", func(t *testing.T) {
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(contextutil.RequestIDHeader))
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.RateLimitByIP(1, 1))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "RATE_LIMITED")
}

func TestRateLimitByIP_Disabled(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.RateLimitByIP(0, 0))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestIdempotency(t *testing.T) {
	const body = `{"ok":true,"data":{"id":5}}`

	newRouter := func(handlerCalls *int, mw gin.HandlerFunc) *gin.Engine {
		r := setupRouter()
		r.POST("/items", mw, func(c *gin.Context) {
			*handlerCalls++
			c.Data(http.StatusCreated, "application/json", []byte(body))
		})
		return r
	}
	post := func(key string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/items", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		if key != "" {
			req.Header.Set(middleware.IdempotencyHeader, key)
		}
		return req
	}
	cacheKey := middleware.IdempotencyCacheKey("/items", "10.0.0.1", "k1")

	t.Run("first request runs the handler and stores the response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newRouter(&calls, middleware.Idempotency(rdb))

		payload, _ := json.Marshal(struct {
			Status int             `json:"status"`
			Body   json.RawMessage `json:"body"`
		}{http.StatusCreated, json.RawMessage(body)})
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, string(payload), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, post("k1"))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat is replayed without running the handler", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newRouter(&calls, middleware.Idempotency(rdb))

		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":` + body + `}`)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, post("k1"))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, body, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newRouter(&calls, middleware.Idempotency(rdb))

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, post("k1"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("no key or no redis passes through", func(t *testing.T) {
		calls := 0
		r := newRouter(&calls, middleware.Idempotency(nil))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, post("k1"))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
	})
}
