package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"account-ledger/internal/auth"
	"account-ledger/internal/errs"
	"account-ledger/internal/models/users"
	"account-ledger/internal/store"
)

const MeErrPrefix = "Error by get current User"

func Me(w http.ResponseWriter, r *http.Request, userID string, s store.Store) ResponseType {
	user, err := s.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return ResponseType{
				LogMsg: fmt.Sprintf("%s: token identity '%s' has no record", MeErrPrefix, userID),
				Code:   http.StatusUnauthorized,
				Body:   "Authorization error!",
			}
		}

		return ResponseType{
			LogMsg: fmt.Sprintf("%s - %v", MeErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	response, err := json.Marshal(struct {
		ID        string `json:"id"`
		Login     string `json:"userId"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}{
		ID:        user.ID,
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})

	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: cannot encode response JSON body - %v", MeErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	return ResponseType{
		Code: http.StatusOK,
		Body: string(response),
	}
}

const UpdateErrPrefix = "Error by update User"

// UpdateUser mutates only the record behind userID, which the auth gate
// resolved from the token. A client-supplied identity is never read.
func UpdateUser(w http.ResponseWriter, r *http.Request, userID string, s store.Store) ResponseType {
	requestData := users.UpdateData{}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&requestData); err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: unable decode json - %v", UpdateErrPrefix, err),
			Code:   http.StatusBadRequest,
			Body:   "Error occurred. Incorrect input data found.",
		}
	}

	if requestData.Empty() {
		return ResponseType{
			Code: http.StatusOK,
			Body: "No changes made.",
		}
	}

	if err := requestData.Validate(); err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: %v", UpdateErrPrefix, err),
			Code:   http.StatusBadRequest,
			Body:   fmt.Sprintf("Error occurred. Incorrect input data found: %v.", err),
		}
	}

	update := users.Update{
		FirstName: requestData.FirstName,
		LastName:  requestData.LastName,
	}

	if requestData.Password != nil {
		hash, err := auth.HashPassword(*requestData.Password)
		if err != nil {
			return ResponseType{
				LogMsg: fmt.Sprintf("%s: unable hash password - %v", UpdateErrPrefix, err),
				Code:   http.StatusInternalServerError,
			}
		}

		update.HashPassword = &hash
	}

	modified, err := s.UpdateUser(r.Context(), userID, update)
	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s - %v", UpdateErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	if !modified {
		return ResponseType{
			Code: http.StatusOK,
			Body: "No changes made.",
		}
	}

	return ResponseType{
		LogMsg: fmt.Sprintf("Successfully updated user '%s': %v", userID, requestData.Fields()),
		Code:   http.StatusOK,
		Body:   fmt.Sprintf("User updated successfully. Changes made: %s.", strings.Join(requestData.Fields(), ", ")),
	}
}
