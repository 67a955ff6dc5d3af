package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/internal/mocks"
	"github.com/gdugdh24/topfive-backend/pkg/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// capHandler keeps the attributes of the last record, including those added through
// Logger.With. Derived handlers report into the same capture.
type capHandler struct {
	base []slog.Attr
	rec  *captured
}

type captured struct {
	last  map[string]any
	level slog.Level
	count int
}

func newCap() *capHandler { return &capHandler{rec: &captured{}} }

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	out := make(map[string]any, len(h.base)+8)
	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})
	out["msg"] = r.Message
	h.rec.last = out
	h.rec.level = r.Level
	h.rec.count++
	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &capHandler{base: append(append([]slog.Attr{}, h.base...), attrs...), rec: h.rec}
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

type authFunc func(ctx context.Context, token string) (*domain.Account, error)

func (f authFunc) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	return f(ctx, token)
}

func serve(r http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	account := &domain.Account{ID: 7, IsActive: true}
	m := NewAuthMiddleware(authFunc(func(_ context.Context, token string) (*domain.Account, error) {
		switch token {
		case "good":
			return account, nil
		case "broken":
			return nil, errors.New("pq: connection refused")
		}
		return nil, domain.ErrUnauthorized
	}))

	r := gin.New()
	r.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		got, ok := CurrentAccount(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": got.ID})
	})

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"rejected token", "Bearer bad", http.StatusUnauthorized},
		{"lowercase scheme", "bearer good", http.StatusOK},
		{"valid", "Bearer good", http.StatusOK},
		{"lookup failure", "Bearer broken", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(r, http.MethodGet, "/me", map[string]string{"Authorization": tc.header})
			require.Equal(t, tc.code, w.Code, w.Body.String())
			if tc.code == http.StatusOK {
				require.JSONEq(t, `{"id":7}`, w.Body.String())
			}
		})
	}
}

func TestRequireStaff(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(authFunc(func(_ context.Context, token string) (*domain.Account, error) {
		return &domain.Account{ID: 1, IsActive: true, IsStaff: token == "staff"}, nil
	}))

	r := gin.New()
	r.GET("/all/", m.RequireAuth(), m.RequireStaff(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := serve(r, http.MethodGet, "/all/", map[string]string{"Authorization": "Bearer member"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, http.MethodGet, "/all/", map[string]string{"Authorization": "Bearer staff"})
	require.Equal(t, http.StatusNoContent, w.Code)

	// without RequireAuth in front nobody is known
	bare := gin.New()
	bare.GET("/all/", m.RequireStaff(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	require.Equal(t, http.StatusUnauthorized, serve(bare, http.MethodGet, "/all/", nil).Code)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetHeader(RequestIDHeader))
	})

	w := serve(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "abc-123"})
	require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	require.Equal(t, "abc-123", w.Body.String())

	w = serve(r, http.MethodGet, "/", nil)
	generated := w.Header().Get(RequestIDHeader)
	require.Len(t, generated, 36)
	require.Equal(t, generated, w.Body.String())

	w = serve(r, http.MethodGet, "/", map[string]string{RequestIDHeader: strings.Repeat("x", 200)})
	require.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestLogging_RequestScopedLogger(t *testing.T) {
	t.Parallel()

	h := newCap()
	var inner map[string]any

	r := gin.New()
	r.Use(RequestID(), Logging(slog.New(h)))
	r.GET("/boom", func(c *gin.Context) {
		log.From(c.Request.Context()).Info("inside")
		inner = h.rec.last
		c.Status(http.StatusBadGateway)
	})

	serve(r, http.MethodGet, "/boom", map[string]string{RequestIDHeader: "rid-1"})

	require.Equal(t, "rid-1", inner["request_id"])
	require.Equal(t, "inside", inner["msg"])
	require.Equal(t, "rid-1", h.rec.last["request_id"])
	require.Equal(t, "http", h.rec.last["msg"])
}

func TestLogging_AccessRecord(t *testing.T) {
	t.Parallel()

	h := newCap()
	r := gin.New()
	r.Use(Logging(slog.New(h)))
	r.GET("/fail", func(c *gin.Context) { c.String(http.StatusInternalServerError, "nope") })

	serve(r, http.MethodGet, "/fail", nil)

	require.Equal(t, 1, h.rec.count)
	require.Equal(t, "http", h.rec.last["msg"])
	require.Equal(t, "GET", h.rec.last["method"])
	require.Equal(t, "/fail", h.rec.last["path"])
	require.EqualValues(t, http.StatusInternalServerError, h.rec.last["status"])
	require.EqualValues(t, 4, h.rec.last["bytes"])
	require.Equal(t, slog.LevelError, h.rec.level)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(Recover())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/panic", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockRateLimiter(ctrl)

	r := gin.New()
	r.POST("/login/", RateLimit(limiter), func(c *gin.Context) { c.Status(http.StatusOK) })

	gomock.InOrder(
		limiter.EXPECT().Allow(gomock.Any(), "/login/:192.0.2.1").Return(true, 1, nil),
		limiter.EXPECT().Allow(gomock.Any(), "/login/:192.0.2.1").Return(false, 0, nil),
		limiter.EXPECT().Allow(gomock.Any(), "/login/:192.0.2.1").Return(false, 0, errors.New("redis down")),
	)

	w := serve(r, http.MethodPost, "/login/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = serve(r, http.MethodPost, "/login/", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// fail open
	w = serve(r, http.MethodPost, "/login/", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/get_profile/:id/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	serve(r, http.MethodGet, "/get_profile/1/", nil)
	serve(r, http.MethodGet, "/get_profile/2/", nil)
	serve(r, http.MethodGet, "/nowhere", nil)

	w := serve(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, `topfive_http_requests_total{method="GET",route="/get_profile/:id/",status="200"} 2`)
	require.Contains(t, body, `topfive_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	require.Contains(t, body, "topfive_http_request_duration_seconds_bucket")
	require.Contains(t, body, "go_goroutines")
}
