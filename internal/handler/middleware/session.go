package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"rental-cart/internal/pkg/bearer"
	"rental-cart/internal/pkg/config"
	"rental-cart/internal/pkg/cookie"
	"rental-cart/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader   = "X-Cart-Session"
	ctxSessionIDKey = "session_id"
)

type SessionTokens interface {
	GenerateSessionToken(sessionID uuid.UUID) (string, error)
	ValidateSessionToken(token string) (*jwt.Claims, error)
	TokenDuration() time.Duration
}

type SessionMiddleware struct {
	tokens SessionTokens
	cfg    config.SessionConfig
}

func NewSessionMiddleware(tokens SessionTokens, cfg config.SessionConfig) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, cfg: cfg}
}

// RequireSession resolves the caller's cart session from the session cookie
// or header, issuing a fresh one when neither carries a valid token. The
// caller's bearer token, if any, is attached to the request context so that
// backend calls can forward it.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c, m.cfg)
		if token == "" {
			token = c.GetHeader(SessionHeader)
		}

		var sessionID uuid.UUID
		if token != "" {
			claims, err := m.tokens.ValidateSessionToken(token)
			if err != nil {
				slog.Debug("discarding cart session token", "error", err.Error())
			} else {
				sessionID = claims.SessionID
			}
		}

		if sessionID == uuid.Nil {
			sessionID = uuid.New()
			issued, err := m.tokens.GenerateSessionToken(sessionID)
			if err != nil {
				slog.Error("failed to issue cart session token", "error", err.Error())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": gin.H{"message": "Internal server error"},
				})
				return
			}
			token = issued
			cookie.SetSessionCookie(c, m.cfg, token, m.tokens.TokenDuration())
		}

		c.Header(SessionHeader, token)
		c.Set(ctxSessionIDKey, sessionID.String())

		if t := bearer.FromHeader(c.GetHeader("Authorization")); t != "" {
			c.Request = c.Request.WithContext(bearer.WithToken(c.Request.Context(), t))
		}

		c.Next()
	}
}

func GetSessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
