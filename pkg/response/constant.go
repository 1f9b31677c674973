package response

import "time"

const (
	MessageSuccess          = "Success"
	ValidationErrorCode     = 400
	PermissionErrorCode     = 403
	InternalServerErrorCode = 500

	stackTraceDepth      = 32
	discordMaxMessageLen = 4000
	bugReportTimeout     = 30 * time.Second
	requestIDHeader      = "X-Request-ID"
)
