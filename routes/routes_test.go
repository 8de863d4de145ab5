package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	articlemocks "quizportal/articles/mocks"
	"quizportal/handlers"
	"quizportal/middleware"
	"quizportal/repositories"
	"quizportal/services"
	svcmocks "quizportal/services/mocks"
	"quizportal/testutil"
)

type tokenAuth struct{}

func (tokenAuth) Authenticate(_ context.Context, token string) (uint, error) {
	if token == "valid" {
		return 1, nil
	}
	return 0, errors.New("invalid")
}

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	store := repositories.NewGormStore(testutil.NewDB(t))

	quizSvc := services.NewQuizService(store, articlemocks.NewMockProvider(ctrl), nil)
	authSvc := services.NewAuthService(store.Users(), svcmocks.NewMockSessionStore(ctrl), "secret", time.Hour)
	hub := services.NewHub()

	reg := prometheus.NewRegistry()
	router := gin.New()
	router.Use(middleware.NewMetricsBuilder(reg).Build())
	SetupRoutes(router, Handlers{
		Auth: handlers.NewAuthHandler(authSvc, "sid", time.Hour),
		Quiz: handlers.NewQuizHandler(quizSvc),
		Live: handlers.NewLiveHandler(hub, nil),
	}, middleware.NewSessionAuthBuilder(tokenAuth{}, "sid"), reg)
	return router
}

func TestRoutesGuard(t *testing.T) {
	router := newRouter(t)

	testCases := []struct {
		method       string
		path         string
		token        string
		wantCode     int
		wantLocation string
	}{
		{method: http.MethodGet, path: "/quiz", wantCode: http.StatusSeeOther, wantLocation: "/user/login"},
		{method: http.MethodGet, path: "/quiz/create", wantCode: http.StatusSeeOther, wantLocation: "/user/login"},
		{method: http.MethodGet, path: "/quiz/edit/1", wantCode: http.StatusSeeOther, wantLocation: "/user/login"},
		{method: http.MethodGet, path: "/quiz/1", wantCode: http.StatusSeeOther, wantLocation: "/user/login"},
		{method: http.MethodGet, path: "/ws/quizzes", wantCode: http.StatusSeeOther, wantLocation: "/user/login"},
		{method: http.MethodPost, path: "/quiz/create", wantCode: http.StatusUnauthorized},
		{method: http.MethodPost, path: "/quiz/edit/1", wantCode: http.StatusUnauthorized},
		{method: http.MethodGet, path: "/quiz/all", wantCode: http.StatusUnauthorized},
		{method: http.MethodDelete, path: "/quiz/1", wantCode: http.StatusUnauthorized},
		{method: http.MethodGet, path: "/quiz/all", token: "valid", wantCode: http.StatusOK},
		{method: http.MethodGet, path: "/quiz", token: "valid", wantCode: http.StatusOK},
		{method: http.MethodGet, path: "/health", wantCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.AddCookie(&http.Cookie{Name: "sid", Value: tc.token})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantLocation, w.Header().Get("Location"))
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newRouter(t)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `quizportal_http_requests_total{method="GET",path="/health",status_code="200"} 1`))
}
