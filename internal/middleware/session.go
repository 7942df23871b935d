package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"

	// SessionCookieName carries the signed guest session token. Cart and
	// wishlist state is keyed by the session id inside it.
	SessionCookieName = "aero_session"

	sessionTTL = 30 * 24 * time.Hour
)

// SessionMiddleware attaches a guest session id to every request. A valid
// session cookie is reused; anything else gets a fresh session minted and
// set on the response. Requests are never rejected for session problems:
// a broken token just means a new empty cart.
func SessionMiddleware(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""

			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				sessionID = parseSessionToken(cookie.Value, jwtSecret, logger)
			}

			if sessionID == "" {
				sessionID = uuid.New().String()
				token, err := signSessionToken(sessionID, jwtSecret)
				if err != nil {
					logger.Error("Failed to sign session token", zap.Error(err))
					RespondWithError(w, http.StatusInternalServerError, "internal server error")
					return
				}

				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(sessionTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})

				logger.Debug("New guest session", zap.String("session_id", sessionID))
			}

			ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseSessionToken(tokenString, jwtSecret string, logger *zap.Logger) string {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Session token rejected", zap.Error(err))
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return ""
	}

	return sessionID
}

func signSessionToken(sessionID, jwtSecret string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"iat":        jwt.NewNumericDate(time.Now()),
		"exp":        jwt.NewNumericDate(time.Now().Add(sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// GetSessionID extracts the guest session id from request context.
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}
