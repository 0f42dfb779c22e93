package middleware

import (
	"context"
	"log"
	"net/http"

	"account-ledger/internal/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth verifies the session token and puts the caller's identity into the
// request context. It never touches the store.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := auth.TokenFromRequest(r)
		if err != nil {
			log.Printf("error by Authorization - %v", err)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization error!"))
			return
		}

		userID, err := auth.GetUserIDFromToken(tokenString)
		if err != nil {
			log.Printf("error by Authorization - %v", err)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization error!"))
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated identity set by Auth, or an empty
// string when the request did not pass the gate.
func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)

	return userID
}
