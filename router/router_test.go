package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"notesapp/config"
	"notesapp/internal/token"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

var (
	userCols = []string{"id", "full_name", "email", "password_hash", "created_at"}
	noteCols = []string{"id", "owner_id", "title", "content", "tags", "is_pinned", "created_at"}
)

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		TokenSecret:    testSecret,
		TokenTTL:       time.Hour,
		BcryptCost:     bcrypt.MinCost,
		AllowedOrigins: []string{"*"},
	}
	return Setup(sqlx.NewDb(db, "postgres"), cfg), mock
}

func call(t *testing.T, h http.Handler, method, path, accessToken string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestRootRoute(t *testing.T) {
	h, _ := newTestRouter(t)
	code, body := call(t, h, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "hello world", body["data"])
	assert.Equal(t, false, body["error"])
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestRouter(t)
	code, body := call(t, h, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, true, body["error"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h, mock := newTestRouter(t)
	id := uuid.NewString()

	routes := []struct{ method, path string }{
		{http.MethodGet, "/get-user"},
		{http.MethodGet, "/get-all-users"},
		{http.MethodPost, "/add-note"},
		{http.MethodPut, "/edit-note/" + id},
		{http.MethodGet, "/get-all-notes"},
		{http.MethodDelete, "/delete-note/" + id},
		{http.MethodPut, "/update-note-pinned/" + id},
		{http.MethodGet, "/search-notes?query=x"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			code, body := call(t, h, rt.method, rt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, code)
			assert.Equal(t, true, body["error"])
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreflightIsAnsweredByCORS(t *testing.T) {
	h, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/add-note", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNotesScenario(t *testing.T) {
	h, mock := newTestRouter(t)
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	// Alice signs up.
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userCols))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	code, body := call(t, h, http.MethodPost, "/create-account", "", map[string]string{
		"fullName": "Alice", "email": "Alice@Example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, code, body)
	user := body["user"].(map[string]any)
	aliceID := user["_id"].(string)
	aliceToken := body["accessToken"].(string)
	assert.NotContains(t, user, "password_hash")
	assert.NotEmpty(t, aliceToken)

	// She adds a note.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notes")).
		WithArgs(sqlmock.AnyArg(), aliceID, "Groceries", "milk", sqlmock.AnyArg(), false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	code, body = call(t, h, http.MethodPost, "/add-note", aliceToken, map[string]any{
		"title": "Groceries", "content": "milk", "tags": []string{"food"},
	})
	require.Equal(t, http.StatusOK, code, body)
	note := body["note"].(map[string]any)
	noteID := note["_id"].(string)
	assert.Equal(t, aliceID, note["userId"])
	assert.Equal(t, false, note["isPinned"])
	assert.Equal(t, []any{"food"}, note["tags"])

	// A note without content is rejected before touching the store.
	code, body = call(t, h, http.MethodPost, "/add-note", aliceToken, map[string]any{"title": "Empty"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Content is required", body["message"])

	// Her list contains the note.
	mock.ExpectQuery(regexp.QuoteMeta("FROM notes WHERE owner_id = $1")).
		WithArgs(aliceID).
		WillReturnRows(sqlmock.NewRows(noteCols).
			AddRow(noteID, aliceID, "Groceries", "milk", "{food}", false, created))

	code, body = call(t, h, http.MethodGet, "/get-all-notes", aliceToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	require.Len(t, body["notes"], 1)

	// Bob cannot edit it.
	bobToken, err := token.NewService(testSecret, time.Hour).Issue(uuid.NewString())
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta("FROM notes WHERE id = $1")).
		WithArgs(noteID).
		WillReturnRows(sqlmock.NewRows(noteCols).
			AddRow(noteID, aliceID, "Groceries", "milk", "{food}", false, created))

	code, _ = call(t, h, http.MethodPut, "/edit-note/"+noteID, bobToken, map[string]string{"title": "mine"})
	assert.Equal(t, http.StatusForbidden, code)

	// Pinning without isPinned is a bad request.
	code, body = call(t, h, http.MethodPut, "/update-note-pinned/"+noteID, aliceToken, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "isPinned is required", body["message"])

	// An empty search query is a bad request.
	code, _ = call(t, h, http.MethodGet, "/search-notes?query=%20", aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginFailures(t *testing.T) {
	h, mock := newTestRouter(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(uuid.NewString(), "Alice", "alice@example.com", string(hash), time.Now()))
	code, body := call(t, h, http.MethodPost, "/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid credentials", body["message"])

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userCols))
	code, body = call(t, h, http.MethodPost, "/login", "", map[string]string{
		"email": "ghost@example.com", "password": "whatever",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "User does not exist", body["message"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
