package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"account-ledger/internal/auth"
	"account-ledger/internal/config"
	"account-ledger/internal/models/money"
	"account-ledger/internal/store/memory"

	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	config.Config.AuthSecret = "test-secret"
	config.Config.StartBalanceCeiling = 10000

	s := memory.NewStore()

	body := `{"firstName":"Ann","lastName":"Lee","userId":"ann1","password":"p","balance":999999}`

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/user/signup", bytes.NewBufferString(body))

	response := Signup(w, r, s)
	require.Equal(t, http.StatusOK, response.Code)

	var parsed struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(response.Body), &parsed))
	require.NotEmpty(t, parsed.Token)
	require.Equal(t, "User created successfully.", parsed.Message)

	userID, err := auth.GetUserIDFromToken(parsed.Token)
	require.NoError(t, err)

	user, err := s.GetUserByID(r.Context(), userID)
	require.NoError(t, err)
	require.Equal(t, "ann1", user.Login)
	require.NotEqual(t, "p", user.HashPassword)

	account, err := s.GetAccountByUserID(r.Context(), userID)
	require.NoError(t, err)
	require.Less(t, account.Balance, money.Money(10000))

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/api/user/signup", bytes.NewBufferString(body))

	response = Signup(w, r, s)
	require.Equal(t, http.StatusConflict, response.Code)
}

func TestSignup_Validation(t *testing.T) {
	config.Config.AuthSecret = "test-secret"

	s := memory.NewStore()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "1 broken json",
			body: `{"firstName":`,
		},
		{
			name: "2 missing password",
			body: `{"firstName":"Ann","lastName":"Lee","userId":"ann1"}`,
		},
		{
			name: "3 empty first name",
			body: `{"firstName":"","lastName":"Lee","userId":"ann1","password":"p"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/user/signup", bytes.NewBufferString(tt.body))

			response := Signup(w, r, s)
			require.Equal(t, http.StatusBadRequest, response.Code)
		})
	}
}

func TestSignin(t *testing.T) {
	config.Config.AuthSecret = "test-secret"
	config.Config.StartBalanceCeiling = 10000

	s := memory.NewStore()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/user/signup",
		bytes.NewBufferString(`{"firstName":"Ann","lastName":"Lee","userId":"ann1","password":"p"}`))

	response := Signup(w, r, s)
	require.Equal(t, http.StatusOK, response.Code)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/api/user/signin",
		bytes.NewBufferString(`{"userId":"ann1","password":"p"}`))

	response = Signin(w, r, s)
	require.Equal(t, http.StatusOK, response.Code)

	var parsed struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(response.Body), &parsed))

	userID, err := auth.GetUserIDFromToken(parsed.Token)
	require.NoError(t, err)

	user, err := s.GetUserByID(r.Context(), userID)
	require.NoError(t, err)
	require.Equal(t, "ann1", user.Login)

	cookies := w.Result().Cookies()
	names := make(map[string]bool, len(cookies))
	for _, cookie := range cookies {
		names[cookie.Name] = true

		if cookie.Name == auth.AuthCookieName {
			require.True(t, cookie.HttpOnly)
		}
	}

	require.True(t, names[auth.AuthCookieName])
	require.True(t, names["current_user"])
	require.True(t, names["display_name"])
}

func TestSignin_NonEnumerable(t *testing.T) {
	config.Config.AuthSecret = "test-secret"
	config.Config.StartBalanceCeiling = 10000

	s := memory.NewStore()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/user/signup",
		bytes.NewBufferString(`{"firstName":"Ann","lastName":"Lee","userId":"ann1","password":"p"}`))

	response := Signup(w, r, s)
	require.Equal(t, http.StatusOK, response.Code)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/api/user/signin",
		bytes.NewBufferString(`{"userId":"ann1","password":"wrong"}`))

	wrongPassword := Signin(w, r, s)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/api/user/signin",
		bytes.NewBufferString(`{"userId":"nobody","password":"p"}`))

	unknownUser := Signin(w, r, s)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, wrongPassword.Code, unknownUser.Code)
	require.Equal(t, wrongPassword.Body, unknownUser.Body)
}
