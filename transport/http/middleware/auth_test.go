package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/config"
	otelMocks "venue/infras/otel/mocks"
	authMocks "venue/internal/domains/auth/mocks"
	"venue/internal/domains/auth/model/dto"
	"venue/permissions"
	"venue/shared/constant"
	"venue/shared/failure"
	"venue/transport/http/middleware"
)

func newRouter(t *testing.T) (*chi.Mux, *authMocks.MockAuth) {
	t.Helper()

	ctrl := gomock.NewController(t)
	authService := authMocks.NewMockAuth(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	mw := middleware.NewAuthRoleMiddleware(authService, otelMocks.NewOtel(), permissions.Get(), cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		w.Header().Set("X-Role", role)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Use(mw.APIKey, mw.Auth, mw.RBAC)
	router.Route("/v1", func(v1 chi.Router) {
		v1.Post("/inquiry", ok)
		v1.Route("/bookings", func(bookings chi.Router) {
			bookings.Get("/", ok)
			bookings.Patch("/{id}/status", ok)
		})
		v1.Get("/auth/me", ok)
	})

	return router, authService
}

func serve(router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, nil)
	if token != "" {
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestAuthRole_PublicRoute(t *testing.T) {
	router, _ := newRouter(t)

	recorder := serve(router, http.MethodPost, "/v1/inquiry", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthRole_MissingCredential(t *testing.T) {
	router, _ := newRouter(t)

	recorder := serve(router, http.MethodGet, "/v1/bookings", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constant.ResponseErrorNotAuthorized)
}

func TestAuthRole_InvalidCredential(t *testing.T) {
	router, authService := newRouter(t)

	authService.EXPECT().Authenticate(gomock.Any(), "bad").
		Return(dto.Identity{}, failure.Unauthorized(constant.ResponseErrorNotAuthorized))

	recorder := serve(router, http.MethodGet, "/v1/bookings", "bad")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthRole_Roles(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		method string
		path   string
		want   int
	}{
		{name: "kitchen lists bookings", role: constant.RoleKitchen, method: http.MethodGet, path: "/v1/bookings", want: http.StatusOK},
		{name: "kitchen can not relabel", role: constant.RoleKitchen, method: http.MethodPatch, path: "/v1/bookings/b1/status", want: http.StatusForbidden},
		{name: "admin relabels", role: constant.RoleAdmin, method: http.MethodPatch, path: "/v1/bookings/b1/status", want: http.StatusOK},
		{name: "no role is denied staff routes", role: constant.RoleNone, method: http.MethodGet, path: "/v1/bookings", want: http.StatusForbidden},
		{name: "no role reads itself", role: constant.RoleNone, method: http.MethodGet, path: "/v1/auth/me", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, authService := newRouter(t)

			authService.EXPECT().Authenticate(gomock.Any(), "token").
				Return(dto.Identity{UserID: "u1", Email: "staff@example.com", Role: tt.role}, nil)

			recorder := serve(router, tt.method, tt.path, "token")
			require.Equal(t, tt.want, recorder.Code)

			if tt.want == http.StatusOK {
				assert.Equal(t, tt.role, recorder.Header().Get("X-Role"))
			}
		})
	}
}

func TestAuthRole_APIKey(t *testing.T) {
	router, _ := newRouter(t)

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	request.Header.Set(constant.RequestHeaderAPIKey, "internal-key")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	request.Header.Set(constant.RequestHeaderAPIKey, "wrong")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
