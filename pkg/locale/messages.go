package locale

import "context"

// Message keys for fixed user-facing texts.
const (
	MsgAccessDenied     = "access_denied"
	MsgAccessDeniedHint = "access_denied_hint"
	MsgValidationFailed = "validation_failed"
	MsgDuplicateInvite  = "duplicate_invitation"
	MsgDeleteConfirmed  = "delete_confirmed"
	MsgSomethingWrong   = "something_went_wrong"
)

var messages = map[string]map[string]string{
	EN: {
		MsgAccessDenied:     "Access denied",
		MsgAccessDeniedHint: "You do not have permission to view this page. Contact your organization administrator.",
		MsgValidationFailed: "Please correct the highlighted fields",
		MsgDuplicateInvite:  "This user has already been invited to the organization",
		MsgDeleteConfirmed:  "Deleted successfully",
		MsgSomethingWrong:   "Something went wrong",
	},
	SW: {
		MsgAccessDenied:     "Ufikiaji umekataliwa",
		MsgAccessDeniedHint: "Huna ruhusa ya kuona ukurasa huu. Wasiliana na msimamizi wa shirika lako.",
		MsgValidationFailed: "Tafadhali sahihisha sehemu zilizoangaziwa",
		MsgDuplicateInvite:  "Mtumiaji huyu tayari amealikwa kwenye shirika",
		MsgDeleteConfirmed:  "Imefutwa",
		MsgSomethingWrong:   "Hitilafu imetokea",
	},
}

// Translate returns the text for key in lang, falling back to English and then to key.
func Translate(lang, key string) string {
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLang][key]; ok {
		return msg
	}
	return key
}

// T translates key using the locale stored in ctx.
func T(ctx context.Context, key string) string {
	return Translate(GetLang(ctx), key)
}
