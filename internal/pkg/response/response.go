package response

import (
	"Revu/internal/api/dto"
	"Revu/internal/pkg/util"
	"Revu/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success writes the {message, result?} envelope with status 200.
func Success(ctx *gin.Context, message string, result interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Message: message,
		Result:  result,
	})
}

// Fail writes the envelope with the given HTTP status and no result.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{
		Message: message,
	})
}

// Error translates service errors into HTTP responses. Unknown errors are
// logged and answered with a generic 500.
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	var fieldErr *util.ValidationError
	if errors.As(err, &fieldErr) {
		Fail(c, http.StatusBadRequest, fieldErr.Error())
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		status = http.StatusInternalServerError
		log.ErrorContext(c.Request.Context(), "unhandled error", "err", err)
		Fail(c, status, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}
