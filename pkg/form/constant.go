package form

const (
	tagMessage = "msg"
	tagLabel   = "label"

	// ValidationErrorCode is the code put on every field error.
	ValidationErrorCode = 400
)
