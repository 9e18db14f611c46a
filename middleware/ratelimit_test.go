package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariebrainware/hospital-api/config"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(cfg RateLimitConfig) *gin.Engine {
	r := newTestRouter(RateLimiter(cfg))
	r.POST("/hospital/api/salas", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func postFrom(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/hospital/api/salas", nil)
	req.RemoteAddr = ip + ":1234"
	return serve(r, req)
}

func TestRateLimiter_WithoutRedis(t *testing.T) {
	config.SetRedisClientForTest(nil)

	r := rateLimitedRouter(RateLimitConfig{Limit: 1, Window: time.Minute})
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusCreated, postFrom(r, "192.168.1.1").Code, "request %d", i+1)
	}
}

func TestRateLimiter_WithRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(db)
	t.Cleanup(func() { config.SetRedisClientForTest(nil) })

	key := rateLimitKey("/hospital/api/salas", "10.0.0.1")
	window := 30 * time.Second
	r := rateLimitedRouter(RateLimitConfig{Limit: 2, Window: window})

	tests := []struct {
		count int64
		want  int
	}{
		{1, http.StatusCreated},
		{2, http.StatusCreated},
		{3, http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		mock.ExpectIncr(key).SetVal(tt.count)
		mock.ExpectExpire(key, window).SetVal(true)
		w := postFrom(r, "10.0.0.1")
		assert.Equal(t, tt.want, w.Code, "count %d", tt.count)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		if tt.want == http.StatusTooManyRequests {
			assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, "30", w.Header().Get("Retry-After"))
		}
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_RedisFailureAllows(t *testing.T) {
	captureLogs(t)
	db, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(db)
	t.Cleanup(func() { config.SetRedisClientForTest(nil) })

	key := rateLimitKey("/hospital/api/salas", "10.0.0.2")
	mock.ExpectIncr(key).SetErr(errors.New("connection refused"))
	mock.ExpectExpire(key, time.Minute).SetErr(errors.New("connection refused"))

	r := rateLimitedRouter(RateLimitConfig{})
	assert.Equal(t, http.StatusCreated, postFrom(r, "10.0.0.2").Code)
}

func TestResetRateLimit(t *testing.T) {
	config.SetRedisClientForTest(nil)
	assert.Error(t, ResetRateLimit(context.Background(), "10.0.0.1", "/hospital/api/salas"))

	db, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(db)
	t.Cleanup(func() { config.SetRedisClientForTest(nil) })

	mock.ExpectDel(rateLimitKey("/hospital/api/salas", "10.0.0.1")).SetVal(1)
	assert.NoError(t, ResetRateLimit(context.Background(), "10.0.0.1", "/hospital/api/salas"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
