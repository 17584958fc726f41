package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venue/config"
	otelMocks "venue/infras/otel/mocks"
	cacheMocks "venue/shared/cache/mocks"
	"venue/shared/constant"
)

func newLimited(t *testing.T, enable bool) (http.Handler, *cacheMocks.MockRedisCache) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	app := NewAppMiddleware(otelMocks.NewOtel(), cfg, cache)

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return app.RateLimit()(ok), cache
}

func inquiryRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/inquiry", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	req.Header.Set(constant.RequestHeaderUserAgent, "curl/8.0")

	return req
}

func TestRateLimit(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		handler, cache := newLimited(t, true)
		cache.EXPECT().Incr(gomock.Any(), "limiter:203.0.113.7:curl/8.0", 60).Return(int64(2), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, inquiryRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over limit", func(t *testing.T) {
		handler, cache := newLimited(t, true)
		cache.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, inquiryRequest())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRetryAfter))
		assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("redis down lets request through", func(t *testing.T) {
		handler, cache := newLimited(t, true)
		cache.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("dial tcp: refused"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, inquiryRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		handler, _ := newLimited(t, false)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, inquiryRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
	})
}

func TestGetClientIP(t *testing.T) {
	app := &appMiddleware{}

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded chain", headers: map[string]string{constant.RequestHeaderForwardedFor: " 198.51.100.1, 10.0.0.1"}, want: "198.51.100.1"},
		{name: "real ip", headers: map[string]string{constant.RequestHeaderRealIP: "198.51.100.2"}, want: "198.51.100.2"},
		{name: "remote addr without port", remote: "203.0.113.7:51234", want: "203.0.113.7"},
		{name: "ipv6 remote addr", remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "remote addr without port suffix", remote: "pipe", want: "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/calendar", nil)
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}

			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			assert.Equal(t, tt.want, app.getClientIP(req))
		})
	}
}
