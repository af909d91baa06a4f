package middleware

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"testplatform/api/internal/models"
	"testplatform/api/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuth guards administrative routes with a single HTTP Basic credential pair.
// Only a bcrypt hash of the password is kept in memory.
type AdminAuth struct {
	username     string
	passwordHash []byte
}

// NewAdminAuth hashes password unless passwordHash is already supplied.
func NewAdminAuth(username, password, passwordHash string) (*AdminAuth, error) {
	if username == "" {
		return nil, errors.New("admin username is empty")
	}
	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		return &AdminAuth{username: username, passwordHash: []byte(passwordHash)}, nil
	}
	if password == "" {
		return nil, errors.New("admin password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AdminAuth{username: username, passwordHash: hash}, nil
}

func (a *AdminAuth) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

// Middleware answers 401 with a Basic challenge on missing or wrong credentials.
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || !a.Verify(username, password) {
			w.Header().Set("WWW-Authenticate", "Basic")
			utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
				Code:    "unauthorized",
				Message: models.MsgInvalidCredentials,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
