package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret"

type MockUserUC struct {
	mock.Mock
}

func (m *MockUserUC) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	return nil, nil
}
func (m *MockUserUC) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserUC) UpdateProfile(ctx context.Context, actor *domain.User, in domain.ProfileInput) (*domain.User, error) {
	return nil, nil
}
func (m *MockUserUC) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	return nil, nil
}
func (m *MockUserUC) VerifyRecruiter(ctx context.Context, actor *domain.User, id int64) (*domain.User, error) {
	return nil, nil
}
func (m *MockUserUC) DeleteUser(ctx context.Context, actor *domain.User, id int64) (*domain.User, error) {
	return nil, nil
}

func sign(t *testing.T, method jwt.SigningMethod, sub string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware(t *testing.T) {
	user := &domain.User{ID: 7, Role: domain.RoleJobSeeker}

	newRouter := func(uc domain.UserUsecase) *gin.Engine {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/me", middleware.AuthMiddleware(testSecret, uc), func(c *gin.Context) {
			u, ok := middleware.CurrentUser(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.String(http.StatusOK, strconv.FormatInt(u.ID, 10))
		})
		return r
	}

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"valid token", "Bearer " + sign(t, jwt.SigningMethodHS256, "7", time.Now().Add(time.Hour)), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", sign(t, jwt.SigningMethodHS256, "7", time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, jwt.SigningMethodHS256, "7", time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"wrong algorithm", "Bearer " + sign(t, jwt.SigningMethodHS512, "7", time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"non numeric subject", "Bearer " + sign(t, jwt.SigningMethodHS256, "abc", time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"unknown user", "Bearer " + sign(t, jwt.SigningMethodHS256, "8", time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"store down", "Bearer " + sign(t, jwt.SigningMethodHS256, "9", time.Now().Add(time.Hour)), http.StatusServiceUnavailable},
		{"store internal error", "Bearer " + sign(t, jwt.SigningMethodHS256, "10", time.Now().Add(time.Hour)), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := new(MockUserUC)
			uc.On("GetCurrentUser", mock.Anything, int64(7)).Return(user, nil)
			uc.On("GetCurrentUser", mock.Anything, int64(8)).Return(nil, apperror.NotFound("User not found"))
			uc.On("GetCurrentUser", mock.Anything, int64(9)).Return(nil, apperror.StoreUnavailable(errors.New("dial tcp: connection refused")))
			uc.On("GetCurrentUser", mock.Anything, int64(10)).Return(nil, apperror.Internal(errors.New("syntax error")))

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusOK {
				assert.Equal(t, "7", w.Body.String())
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", apperror.NotFound("Job not found"), http.StatusNotFound},
		{"forbidden", apperror.Forbidden("Permission denied"), http.StatusForbidden},
		{"invalid status", apperror.InvalidStatus("Invalid status"), http.StatusBadRequest},
		{"duplicate", apperror.DuplicateApplication("dup", nil), http.StatusBadRequest},
		{"wrong role", apperror.WrongRole("seekers only"), http.StatusBadRequest},
		{"self deletion", apperror.SelfDeletionForbidden("no"), http.StatusBadRequest},
		{"store unavailable", apperror.StoreUnavailable(errors.New("dial")), http.StatusServiceUnavailable},
		{"raw error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.ErrorHandler())
			r.GET("/", func(c *gin.Context) { c.Error(tc.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tc.code, w.Code)
			assert.NotContains(t, w.Body.String(), "boom")
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(string(domain.KeyRequestID))) })

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		_, err := uuid.Parse(w.Body.String())
		assert.NoError(t, err)
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", id)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "<script>")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.NotEqual(t, "<script>", w.Body.String())
	})
}

func TestRateLimitInMemoryFallback(t *testing.T) {
	cfg := middleware.DefaultRateLimitConfig(2, time.Minute)
	cfg.KeyPrefix = "rl:test:" + uuid.NewString() + ":"

	r := gin.New()
	r.GET("/", middleware.RateLimitMiddleware(cfg), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.GET("/admin",
		func(c *gin.Context) { c.Set(string(domain.KeyUser), &domain.User{ID: 1, Role: domain.RoleRecruiter}) },
		middleware.RequireRole(domain.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
