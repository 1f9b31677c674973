package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"isp-dashboard/pkg/discord"
	"isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/locale"

	"github.com/gin-gonic/gin"
)

func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	HttpError(c, errors.ErrUnauthorized)
}

// parseError maps err, or the first known error it wraps, to a status and
// envelope. Anything else is reported to d and answered with a generic 500.
func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	ctx := c.Request.Context()

	var (
		validation *errors.ValidationError
		collector  *errors.ValidationErrorCollector
		permission *errors.PermissionError
		httpErr    *errors.HTTPError
	)
	switch {
	case stderrors.As(err, &collector):
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   locale.T(ctx, locale.MsgValidationFailed),
			Errors:    collector.Fields(),
		}
	case stderrors.As(err, &validation):
		return http.StatusBadRequest, Resp{
			ErrorCode: validation.Code,
			Message:   validation.Error(),
			Errors:    map[string]string{validation.Field: strings.Join(validation.Messages, ", ")},
		}
	case stderrors.As(err, &permission):
		return http.StatusForbidden, Resp{
			ErrorCode: permission.Code,
			Message:   locale.T(ctx, locale.MsgAccessDenied),
			Errors:    permission,
		}
	case stderrors.As(err, &httpErr):
		if httpErr.RetryAfter > 0 {
			c.Header("Retry-After", strconv.Itoa(int(httpErr.RetryAfter.Round(time.Second).Seconds())))
		}
		return httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		}
	}

	if d != nil && err != nil {
		reportBug(d, newBugReport(c, err.Error(), captureStackTrace()))
	}
	return http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   locale.T(ctx, locale.MsgSomethingWrong),
	}
}

// Error sends the response parseError builds for err.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// HttpError sends response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	c.JSON(statusCode, resp)
}

// PanicError answers a recovered panic and reports it to d.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", recovered)
	}
	Error(c, err, d)
}

// reportBug posts message in the background, split to fit Discord's limits.
func reportBug(d discord.IDiscord, message string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), bugReportTimeout)
		defer cancel()
		for _, part := range splitMessageForDiscord(message) {
			if err := d.ReportBug(ctx, part); err != nil {
				log.Printf("pkg.response.reportBug: %v", err)
				return
			}
		}
	}()
}
