package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yradunchev/podsub/internal/test"
)

func TestRegisterHandler(t *testing.T) {
	h, mock := setup(t, &test.StubFetcher{})

	mock.ExpectQuery(`SELECT id, email, pass_hash, podcasts FROM users WHERE email = \$1`).
		WithArgs("new@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO auth_tokens`).WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"email":"new@example.com","password":"secret"}`))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.Register).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "Registered successfully", body.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterHandlerDuplicateEmail(t *testing.T) {
	h, mock := setup(t, &test.StubFetcher{})

	mock.ExpectQuery(`SELECT id, email, pass_hash, podcasts FROM users WHERE email = \$1`).
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "pass_hash", "podcasts"}).
			AddRow("user-1", "taken@example.com", "hash", "{}"))

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"email":"taken@example.com","password":"secret"}`))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.Register).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "email already exists")
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	h, mock := setup(t, &test.StubFetcher{})

	mock.ExpectQuery(`SELECT id, email, pass_hash, podcasts FROM users WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"ghost@example.com","password":"nope"}`))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.Login).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
