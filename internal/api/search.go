package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"account-ledger/internal/store"
)

const SearchErrPrefix = "Error by search Users"

type DirectoryEntry struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// SearchUsers returns public display fields of everyone except the
// caller. An empty result set is a normal outcome.
func SearchUsers(w http.ResponseWriter, r *http.Request, userID string, s store.Store) ResponseType {
	filter := r.URL.Query().Get("filter")

	list, err := s.SearchUsers(r.Context(), filter, userID)
	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s - %v", SearchErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	entries := make([]DirectoryEntry, 0, len(list))
	for _, user := range list {
		entries = append(entries, DirectoryEntry{
			ID:          user.ID,
			DisplayName: user.DisplayName(),
		})
	}

	response, err := json.Marshal(struct {
		Users []DirectoryEntry `json:"users"`
	}{
		Users: entries,
	})

	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: cannot encode response JSON body - %v", SearchErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	return ResponseType{
		Code: http.StatusOK,
		Body: string(response),
	}
}
