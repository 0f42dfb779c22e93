package handlers

import (
	"log"
	"net/http"

	"account-ledger/internal/api"
	"account-ledger/internal/middleware"
	"account-ledger/internal/store"
)

type Handler struct {
	Store store.Store
}

type Signup Handler

func (ch *Signup) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	response := api.Signup(w, r, ch.Store)

	sendResponse(response, w)
}

type Signin Handler

func (ch *Signin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	response := api.Signin(w, r, ch.Store)

	sendResponse(response, w)
}

type Me Handler

func (ch *Me) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.UserID(r.Context())
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	response := api.Me(w, r, userID, ch.Store)

	sendResponse(response, w)
}

type Update Handler

func (ch *Update) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.UserID(r.Context())
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	response := api.UpdateUser(w, r, userID, ch.Store)

	sendResponse(response, w)
}

type Search Handler

func (ch *Search) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.UserID(r.Context())
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	response := api.SearchUsers(w, r, userID, ch.Store)

	sendResponse(response, w)
}

type Balance Handler

func (ch *Balance) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.UserID(r.Context())
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	response := api.GetBalanceUser(w, r, userID, ch.Store)

	sendResponse(response, w)
}

type Transfer Handler

func (ch *Transfer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.UserID(r.Context())
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	response := api.CreateTransfer(w, r, userID, ch.Store)

	sendResponse(response, w)
}

func sendResponse(res api.ResponseType, writer http.ResponseWriter) {
	if len(res.LogMsg) > 0 {
		log.Println(res.LogMsg)
	}

	if res.Code > 0 {
		writer.WriteHeader(res.Code)
	}

	if len(res.Body) > 0 {
		writer.Write([]byte(res.Body))
	}
}
