package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"account-ledger/internal/auth"
	"account-ledger/internal/errs"
	"account-ledger/internal/models/users"
	"account-ledger/internal/store"
)

const SignupErrPrefix = "Error by signup new User"

func Signup(w http.ResponseWriter, r *http.Request, s store.Store) ResponseType {
	requestData := auth.RegistrationData{}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&requestData); err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: unable decode json - %v", SignupErrPrefix, err),
			Code:   http.StatusBadRequest,
			Body:   "Error occurred. Incorrect input data found.",
		}
	}

	if err := requestData.Validate(); err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: %v", SignupErrPrefix, err),
			Code:   http.StatusBadRequest,
			Body:   fmt.Sprintf("Error occurred. Incorrect input data found: %v.", err),
		}
	}

	user, errCreateUser := s.CreateUser(r.Context(), requestData)
	if errCreateUser != nil {
		if errors.Is(errCreateUser, errs.ErrAlreadyExist) {
			return ResponseType{
				LogMsg: fmt.Sprintf("%s: user '%s' already exists!", SignupErrPrefix, requestData.Login),
				Code:   http.StatusConflict,
				Body:   "User already exist in database, please login.",
			}
		}

		return ResponseType{
			LogMsg: fmt.Sprintf("%s: unable create new User - %s", SignupErrPrefix, errCreateUser),
			Code:   http.StatusInternalServerError,
		}
	}

	token, err := auth.BuildJWTString(user)
	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: unable create auth token - %s ", SignupErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	response, err := json.Marshal(struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}{
		Token:   token,
		Message: "User created successfully.",
	})

	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: cannot encode response JSON body - %v", SignupErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	setAuthToken(w, token)
	w.Header().Set("Content-Type", "application/json")

	return ResponseType{
		LogMsg: fmt.Sprintf("Successfully registered new user '%s'", user.Login),
		Code:   http.StatusOK,
		Body:   string(response),
	}
}

const SigninErrPrefix = "Error by signin User"

func Signin(w http.ResponseWriter, r *http.Request, s store.Store) ResponseType {
	requestData := auth.Credentials{}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&requestData); err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: unable decode json - %v", SigninErrPrefix, err),
			Code:   http.StatusBadRequest,
			Body:   "Error occurred. Incorrect input data found.",
		}
	}

	if requestData.Login == "" || requestData.Password == "" {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: empty required data", SigninErrPrefix),
			Code:   http.StatusBadRequest,
			Body:   "UserId or password was not passed!",
		}
	}

	// Unknown login and wrong password produce the same response, so the
	// directory cannot be enumerated through signin.
	user, errFindUser := s.GetUserByLogin(r.Context(), requestData.Login)

	if errFindUser != nil {
		if !errors.Is(errFindUser, errs.ErrNotFound) {
			return ResponseType{
				LogMsg: fmt.Sprintf("%s: unable find User - %s", SigninErrPrefix, errFindUser),
				Code:   http.StatusInternalServerError,
			}
		}

		return ResponseType{
			LogMsg: fmt.Sprintf("%s: not find User - %s", SigninErrPrefix, requestData.Login),
			Code:   http.StatusUnauthorized,
			Body:   "Error while logging in. Check userId or password.",
		}
	}

	if !auth.CheckPassword(user.HashPassword, requestData.Password) {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: wrong password for User - %s", SigninErrPrefix, requestData.Login),
			Code:   http.StatusUnauthorized,
			Body:   "Error while logging in. Check userId or password.",
		}
	}

	token, err := auth.BuildJWTString(user)
	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: unable create auth token - %s ", SigninErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	response, err := json.Marshal(struct {
		Token string `json:"token"`
	}{
		Token: token,
	})

	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: cannot encode response JSON body - %v", SigninErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	setAuthToken(w, token)
	setDisplayCookies(w, user)
	w.Header().Set("Content-Type", "application/json")

	return ResponseType{
		LogMsg: fmt.Sprintf("Successfully authorized user '%s'", user.Login),
		Code:   http.StatusOK,
		Body:   string(response),
	}
}

func setAuthToken(w http.ResponseWriter, token string) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))

	http.SetCookie(w, &http.Cookie{
		Name:     auth.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenExp.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// Display cookies are readable by client scripts for personalization.
// They carry no authority and the server never reads them back.
func setDisplayCookies(w http.ResponseWriter, user *users.User) {
	http.SetCookie(w, &http.Cookie{
		Name:     "current_user",
		Value:    url.QueryEscape(user.Login),
		Path:     "/",
		MaxAge:   int(auth.TokenExp.Seconds()),
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "display_name",
		Value:    url.QueryEscape(user.DisplayName()),
		Path:     "/",
		MaxAge:   int(auth.TokenExp.Seconds()),
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
