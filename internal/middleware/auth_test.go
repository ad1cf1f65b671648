package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/yradunchev/podsub/internal/auth"
	"github.com/yradunchev/podsub/internal/test"
)

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		st, mock := test.NewMockStore(t)
		mw := NewAuth(auth.NewService(st))

		mock.ExpectQuery(`SELECT token, expires, user_id FROM auth_tokens WHERE token = \$1`).
			WithArgs("goodtoken").
			WillReturnRows(sqlmock.NewRows([]string{"token", "expires", "user_id"}).
				AddRow("goodtoken", time.Now().Add(time.Hour), "user-1"))
		mock.ExpectQuery(`SELECT id, email, pass_hash, podcasts FROM users WHERE id = \$1`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "pass_hash", "podcasts"}).
				AddRow("user-1", "someone@example.com", "hash", "{}"))

		req := httptest.NewRequest(http.MethodGet, "/podcasts", nil)
		req.Header.Set("Authorization", "Bearer goodtoken")
		rr := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			assert.NotNil(t, user)
			assert.Equal(t, "user-1", user.ID)
			w.WriteHeader(http.StatusOK)
		})

		mw.Middleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no authorization header", func(t *testing.T) {
		st, _ := test.NewMockStore(t)
		mw := NewAuth(auth.NewService(st))
		req := httptest.NewRequest(http.MethodGet, "/podcasts", nil)
		rr := httptest.NewRecorder()
		mw.Middleware(nil).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		st, _ := test.NewMockStore(t)
		mw := NewAuth(auth.NewService(st))
		req := httptest.NewRequest(http.MethodGet, "/podcasts", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rr := httptest.NewRecorder()
		mw.Middleware(nil).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		st, mock := test.NewMockStore(t)
		mw := NewAuth(auth.NewService(st))

		mock.ExpectQuery(`SELECT token, expires, user_id FROM auth_tokens WHERE token = \$1`).
			WithArgs("oldtoken").
			WillReturnRows(sqlmock.NewRows([]string{"token", "expires", "user_id"}).
				AddRow("oldtoken", time.Now().Add(-time.Hour), "user-1"))

		req := httptest.NewRequest(http.MethodGet, "/podcasts", nil)
		req.Header.Set("Authorization", "Bearer oldtoken")
		rr := httptest.NewRecorder()
		mw.Middleware(nil).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
