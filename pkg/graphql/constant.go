package graphql

import "time"

const (
	DefaultTimeout = 15 * time.Second

	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "

	statusOK    = "ok"
	statusError = "error"

	// Prefix machinebox/graphql puts in front of server error messages.
	serverErrorPrefix = "graphql: "
)

// Substrings the API uses when an invitation targets an existing member or invitee.
var duplicateInvitationMarkers = []string{
	"already invited",
	"already a member",
	"duplicate",
}
