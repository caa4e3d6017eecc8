package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const SharerUserIDHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "sharer_user_id"

var (
	errMissingIdentity = errors.New("sharer identity missing")
	errInvalidIdentity = errors.New("sharer identity malformed")
)

// TokenParser resolves a bearer token into a user id. Enabled reports whether
// bearer tokens are accepted at all.
type TokenParser interface {
	Enabled() bool
	ParseUserID(token string) (int64, error)
}

type AuthMiddleware struct {
	tokens TokenParser
}

func NewAuthMiddleware(tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireSharer resolves the acting user. The X-Sharer-User-Id header wins
// over a bearer token when both are sent.
func (m *AuthMiddleware) RequireSharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(SharerUserIDHeader); raw != "" {
			userID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, errInvalidIdentity,
					"Header "+SharerUserIDHeader+" must be an integer user id", nil)
				return
			}
			c.Set(ctxUserIDKey, userID)
			c.Next()
			return
		}

		if token, ok := bearerToken(c); ok && m.tokens.Enabled() {
			userID, err := m.tokens.ParseUserID(token)
			if err != nil {
				slog.Warn("Token validation failed in auth middleware", "error", err.Error())
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
				return
			}
			c.Set(ctxUserIDKey, userID)
			c.Next()
			return
		}

		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity,
			"Required request header "+SharerUserIDHeader+" is not present", nil)
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(authHeader[len("Bearer "):])
	return token, token != ""
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
