package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"account-ledger/internal/config"
	"account-ledger/internal/models/users"

	"github.com/beevik/guid"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const TokenExp = time.Hour * 24 * 7
const AuthCookieName = "auth_token"

type RegistrationData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Login     string `json:"userId"`
	Password  string `json:"password"`
}

func (d *RegistrationData) Validate() error {
	if err := users.ValidateField("firstName", d.FirstName); err != nil {
		return err
	}

	if err := users.ValidateField("lastName", d.LastName); err != nil {
		return err
	}

	if err := users.ValidateField("userId", d.Login); err != nil {
		return err
	}

	return users.ValidatePassword(d.Password)
}

func (d *RegistrationData) NewUserFromData() (*users.User, error) {
	hash, err := HashPassword(d.Password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		ID:               guid.NewString(),
		Login:            d.Login,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		HashPassword:     hash,
		RegistrationDate: time.Now(),
	}

	return user, nil
}

type Credentials struct {
	Login    string `json:"userId"`
	Password string `json:"password"`
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type Claims struct {
	jwt.RegisteredClaims
	UserID string
	// FirstName is a display claim only, it carries no authority.
	FirstName string
}

func BuildJWTString(user *users.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		UserID:    user.ID,
		FirstName: user.FirstName,
	})

	tokenString, err := token.SignedString([]byte(config.Config.AuthSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetUserIDFromToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(config.Config.AuthSecret), nil
		})

	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", fmt.Errorf("token is not valid")
	}

	return claims.UserID, nil
}

// TokenFromRequest extracts the session token from the Authorization
// header or, failing that, from the auth cookie.
func TokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString != "" {
			return tokenString, nil
		}
	}

	cookie, err := r.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return "", errors.New("no session token in request")
	}

	return cookie.Value, nil
}
