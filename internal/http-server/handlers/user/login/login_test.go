package login

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"turfbooker/internal/http-server/handlers/user/login/mocks"
	"turfbooker/internal/lib/logger/handlers/slogdiscard"
	"turfbooker/internal/models"
	"turfbooker/internal/session"
	"turfbooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(t *testing.T, m *mocks.UserProvider)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"username": "alice", "password": "secret123"}`,
			mockSetup: func(t *testing.T, m *mocks.UserProvider) {
				m.On("UserByUsername", "alice").Return(&models.User{
					ID:       1,
					Username: "alice",
					PassHash: hashFor(t, "secret123"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","username":"alice"}`,
		},
		{
			name:        "Wrong password",
			requestBody: `{"username": "alice", "password": "wrongpass"}`,
			mockSetup: func(t *testing.T, m *mocks.UserProvider) {
				m.On("UserByUsername", "alice").Return(&models.User{
					ID:       1,
					Username: "alice",
					PassHash: hashFor(t, "secret123"),
				}, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid username or password"}`,
		},
		{
			name:        "Unknown user",
			requestBody: `{"username": "nobody", "password": "secret123"}`,
			mockSetup: func(t *testing.T, m *mocks.UserProvider) {
				m.On("UserByUsername", "nobody").Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid username or password"}`,
		},
		{
			name:        "Store error",
			requestBody: `{"username": "alice", "password": "secret123"}`,
			mockSetup: func(t *testing.T, m *mocks.UserProvider) {
				m.On("UserByUsername", "alice").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to log in"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(t *testing.T, m *mocks.UserProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing fields",
			requestBody:    `{}`,
			mockSetup:      func(t *testing.T, m *mocks.UserProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Username")
				assert.Contains(t, body, "Password")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewUserProvider(t)
			tc.mockSetup(t, mockProvider)

			sessions := session.NewManager(time.Hour)
			handler := New(logger, mockProvider, sessions)

			req, err := http.NewRequest("POST", "/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestLoginIssuesSession(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockProvider := mocks.NewUserProvider(t)
	mockProvider.On("UserByUsername", "alice").Return(&models.User{
		ID:       42,
		Username: "alice",
		PassHash: hashFor(t, "secret123"),
	}, nil)

	sessions := session.NewManager(time.Hour)
	handler := New(logger, mockProvider, sessions)

	req, err := http.NewRequest("POST", "/login", bytes.NewBufferString(`{"username": "alice", "password": "secret123"}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)

	userID, ok := sessions.UserID(cookies[0].Value)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestLoginSetsNoCookieOnFailure(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockProvider := mocks.NewUserProvider(t)
	mockProvider.On("UserByUsername", "alice").Return(&models.User{
		ID:       1,
		Username: "alice",
		PassHash: hashFor(t, "secret123"),
	}, nil)

	sessions := session.NewManager(time.Hour)
	handler := New(logger, mockProvider, sessions)

	req, err := http.NewRequest("POST", "/login", bytes.NewBufferString(`{"username": "alice", "password": "wrongpass"}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}
