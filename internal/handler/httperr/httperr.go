package httperr

import (
	"log/slog"
	"net/http"

	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Mapper turns use-case faults into status codes. Faults keep their message;
// everything else is reported as an internal error.
type Mapper struct {
	unknownStateStatus int
}

func NewMapper(cfg config.ErrorsConfig) *Mapper {
	status := http.StatusBadRequest
	if cfg.UnknownStateAsServerError {
		status = http.StatusInternalServerError
	}
	return &Mapper{unknownStateStatus: status}
}

func (m *Mapper) Resolve(err error) (int, string) {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound, errs.Message(err)
	case errs.KindValidation:
		return http.StatusBadRequest, errs.Message(err)
	case errs.KindUnknownState:
		return m.unknownStateStatus, errs.Message(err)
	default:
		return http.StatusInternalServerError, internalMessage
	}
}

func (m *Mapper) Abort(c *gin.Context, err error) {
	status, msg := m.Resolve(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.Request.URL.Path, "error", err.Error(), "stack", errs.ExtractStackLines(err, 12))
	}
	AbortWithError(c, status, err, msg, nil)
}
