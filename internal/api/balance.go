package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"account-ledger/internal/store"
)

const BalanceErrPrefix = "Error by get balance User"

func GetBalanceUser(w http.ResponseWriter, r *http.Request, userID string, s store.Store) ResponseType {
	account, err := s.GetAccountByUserID(r.Context(), userID)
	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s - %v", BalanceErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	response, err := json.Marshal(account)
	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: cannot encode response JSON body - %v", BalanceErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	return ResponseType{
		Code: http.StatusOK,
		Body: string(response),
	}
}
