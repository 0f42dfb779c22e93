package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"account-ledger/internal/errs"
	"account-ledger/internal/models/money"
	"account-ledger/internal/store"
)

type RequestForTransfer = struct {
	To  string      `json:"to"`
	Sum money.Money `json:"amount"`
}

const TransferErrPrefix = "Error by transfer between Users"

func CreateTransfer(w http.ResponseWriter, r *http.Request, userID string, s store.Store) ResponseType {
	var request RequestForTransfer

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&request); err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: cannot decode request JSON body - %v", TransferErrPrefix, err),
			Code:   http.StatusBadRequest,
			Body:   "Error occurred. Incorrect input data found.",
		}
	}

	if request.To == "" || request.Sum == 0 {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: empty required data", TransferErrPrefix),
			Code:   http.StatusBadRequest,
			Body:   "Recipient or amount was not passed!",
		}
	}

	recipient, err := s.GetUserByLogin(r.Context(), request.To)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return ResponseType{
				LogMsg: fmt.Sprintf("%s: recipient '%s' not found", TransferErrPrefix, request.To),
				Code:   http.StatusNotFound,
				Body:   "No such user.",
			}
		}

		return ResponseType{
			LogMsg: fmt.Sprintf("%s: unable find recipient - %v", TransferErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	if recipient.ID == userID {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: user '%s' tried to transfer to own account", TransferErrPrefix, userID),
			Code:   http.StatusBadRequest,
			Body:   "Unable transfer to your own account!",
		}
	}

	if err := s.Transfer(r.Context(), userID, recipient.ID, request.Sum); err != nil {
		if errors.Is(err, errs.ErrInsufficientFunds) {
			return ResponseType{
				LogMsg: fmt.Sprintf("%s: not enough funds for user '%s'", TransferErrPrefix, userID),
				Code:   http.StatusPaymentRequired,
				Body:   "Not enough funds on account!",
			}
		}

		return ResponseType{
			LogMsg: fmt.Sprintf("%s - %v", TransferErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	return ResponseType{
		LogMsg: fmt.Sprintf("Successfully transferred from '%s' to '%s'", userID, recipient.ID),
		Code:   http.StatusOK,
		Body:   "Transfer completed successfully!",
	}
}

type ResponseType struct {
	LogMsg string
	Body   string
	Code   int
}
