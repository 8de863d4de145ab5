package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuth map[string]uint

func (s stubAuth) Authenticate(_ context.Context, token string) (uint, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return 0, errors.New("unknown token")
}

func TestSessionAuthBuilder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := stubAuth{"good": 7}

	testCases := []struct {
		name         string
		redirect     bool
		req          func() *http.Request
		wantCode     int
		wantLocation string
		wantUserID   uint
	}{
		{
			name: "cookie",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/quiz/all", nil)
				req.AddCookie(&http.Cookie{Name: "sid", Value: "good"})
				return req
			},
			wantCode:   http.StatusOK,
			wantUserID: 7,
		},
		{
			name: "bearer header",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/quiz/all", nil)
				req.Header.Set("Authorization", "Bearer good")
				return req
			},
			wantCode:   http.StatusOK,
			wantUserID: 7,
		},
		{
			name: "missing token",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodDelete, "/quiz/1", nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "malformed header",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/quiz/all", nil)
				req.Header.Set("Authorization", "Token good")
				return req
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "stale session",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/quiz/all", nil)
				req.AddCookie(&http.Cookie{Name: "sid", Value: "expired"})
				return req
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "page redirects to login",
			redirect: true,
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/quiz/create", nil)
			},
			wantCode:     http.StatusSeeOther,
			wantLocation: LoginPath,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			builder := NewSessionAuthBuilder(auth, "sid")
			if tc.redirect {
				builder = builder.Redirect()
			}

			var gotUserID uint
			server := gin.New()
			server.Use(builder.Build())
			server.Any("/*path", func(c *gin.Context) {
				gotUserID, _ = UserID(c)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			server.ServeHTTP(w, tc.req())

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantLocation, w.Header().Get("Location"))
			assert.Equal(t, tc.wantUserID, gotUserID)
		})
	}
}

func TestUserIDMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := UserID(c)
	assert.False(t, ok)
}
