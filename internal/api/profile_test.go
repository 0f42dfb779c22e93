package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"account-ledger/internal/auth"
	"account-ledger/internal/config"
	"account-ledger/internal/store/memory"

	"github.com/stretchr/testify/require"
)

func registerTestUser(t *testing.T, s *memory.Store, login string) string {
	t.Helper()

	user, err := s.CreateUser(context.Background(), auth.RegistrationData{
		FirstName: "Ann",
		LastName:  "Lee",
		Login:     login,
		Password:  "p",
	})
	require.NoError(t, err)

	return user.ID
}

func TestUpdateUser(t *testing.T) {
	config.Config.AuthSecret = "test-secret"
	config.Config.StartBalanceCeiling = 10000

	s := memory.NewStore()
	userID := registerTestUser(t, s, "ann1")

	before, err := s.GetUserByID(context.Background(), userID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/user",
		bytes.NewBufferString(`{"firstName":"Annie"}`))

	response := UpdateUser(w, r, userID, s)
	require.Equal(t, http.StatusOK, response.Code)
	require.Equal(t, "User updated successfully. Changes made: firstName.", response.Body)

	after, err := s.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, "Annie", after.FirstName)
	require.Equal(t, before.LastName, after.LastName)
	require.Equal(t, before.HashPassword, after.HashPassword)
}

func TestUpdateUser_NoChanges(t *testing.T) {
	config.Config.AuthSecret = "test-secret"

	s := memory.NewStore()
	userID := registerTestUser(t, s, "ann1")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/user", bytes.NewBufferString(`{}`))

	response := UpdateUser(w, r, userID, s)
	require.Equal(t, http.StatusOK, response.Code)
	require.Equal(t, "No changes made.", response.Body)
}

func TestUpdateUser_Validation(t *testing.T) {
	config.Config.AuthSecret = "test-secret"

	s := memory.NewStore()
	userID := registerTestUser(t, s, "ann1")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/user",
		bytes.NewBufferString(`{"lastName":""}`))

	response := UpdateUser(w, r, userID, s)
	require.Equal(t, http.StatusBadRequest, response.Code)
	require.Contains(t, response.Body, "lastName")

	after, err := s.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, "Lee", after.LastName)
}

func TestUpdateUser_PasswordRehash(t *testing.T) {
	config.Config.AuthSecret = "test-secret"

	s := memory.NewStore()
	userID := registerTestUser(t, s, "ann1")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/user",
		bytes.NewBufferString(`{"password":"new-secret"}`))

	response := UpdateUser(w, r, userID, s)
	require.Equal(t, http.StatusOK, response.Code)

	after, err := s.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	require.NotEqual(t, "new-secret", after.HashPassword)
	require.True(t, auth.CheckPassword(after.HashPassword, "new-secret"))
	require.False(t, auth.CheckPassword(after.HashPassword, "p"))
}

func TestMe(t *testing.T) {
	config.Config.AuthSecret = "test-secret"

	s := memory.NewStore()
	userID := registerTestUser(t, s, "ann1")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)

	response := Me(w, r, userID, s)
	require.Equal(t, http.StatusOK, response.Code)

	var parsed struct {
		ID        string `json:"id"`
		Login     string `json:"userId"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	require.NoError(t, json.Unmarshal([]byte(response.Body), &parsed))
	require.Equal(t, userID, parsed.ID)
	require.Equal(t, "ann1", parsed.Login)

	require.NotContains(t, response.Body, "password")
}

func TestMe_UnknownIdentity(t *testing.T) {
	config.Config.AuthSecret = "test-secret"

	s := memory.NewStore()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)

	response := Me(w, r, "missing", s)
	require.Equal(t, http.StatusUnauthorized, response.Code)
}
