//go:build unit

package api_test

import (
	"errors"
	"testing"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/handler/validation"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/jwt"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	ownerID  int64 = 1
	bookerID int64 = 2
)

var assertErr = errors.New("connection reset by peer")

// newTestEngine mounts routes behind the real identity middleware with bearer
// tokens disabled.
func newTestEngine(t *testing.T) (*gin.Engine, *gin.RouterGroup) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	engine := gin.New()
	auth := middleware.NewAuthMiddleware(jwt.NewService("", ""))
	group := engine.Group("")
	group.Use(auth.RequireSharer())
	return engine, group
}

func newMapper(cfg config.ErrorsConfig) *httperr.Mapper {
	return httperr.NewMapper(cfg)
}

func mustPage(t *testing.T, from, size int) queries.Page {
	t.Helper()
	p, err := queries.NewPage(from, size)
	require.NoError(t, err)
	return p
}
