package middleware

import (
	"errors"
	"net"
	"os"
	"syscall"

	"isp-dashboard/pkg/discord"
	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 and a bug report. A panic caused
// by the client hanging up is only logged.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()

			if brokenPipe(rec) {
				logger.Warnf(ctx, "middleware.Recovery: client went away on %s %s: %v", c.Request.Method, c.FullPath(), rec)
				c.Abort()
				return
			}

			logger.Errorf(ctx, "middleware.Recovery: panic on %s %s (request %s): %v",
				c.Request.Method, c.FullPath(), GetRequestID(c), rec)
			response.PanicError(c, rec, discordClient)
			c.Abort()
		}()
		c.Next()
	}
}

func brokenPipe(rec any) bool {
	err, ok := rec.(error)
	if !ok {
		return false
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if errors.As(opErr, &sysErr) {
		return errors.Is(sysErr.Err, syscall.EPIPE) || errors.Is(sysErr.Err, syscall.ECONNRESET)
	}
	return false
}
