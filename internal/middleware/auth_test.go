package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"account-ledger/internal/auth"
	"account-ledger/internal/config"
	"account-ledger/internal/models/users"

	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	config.Config.AuthSecret = "test-secret"

	user := &users.User{ID: "user-1", Login: "ann1", FirstName: "Ann"}

	token, err := auth.BuildJWTString(user)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(UserID(r.Context())))
	})

	tests := []struct {
		name     string
		prepare  func(r *http.Request)
		wantCode int
		wantBody string
	}{
		{
			name: "1 valid token in header",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
			wantCode: http.StatusOK,
			wantBody: "user-1",
		},
		{
			name: "2 valid token in cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: auth.AuthCookieName, Value: token})
			},
			wantCode: http.StatusOK,
			wantBody: "user-1",
		},
		{
			name:     "3 missing token",
			prepare:  func(r *http.Request) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "4 garbage token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer not-a-token")
			},
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(r)

			w := httptest.NewRecorder()

			Auth(next).ServeHTTP(w, r)

			require.Equal(t, tt.wantCode, w.Code)

			if tt.wantBody != "" {
				require.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestUserID_EmptyContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	require.Equal(t, "", UserID(r.Context()))
}
