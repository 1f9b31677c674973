package errors

import "fmt"

// PermissionError reports an action the caller's access level does not allow.
type PermissionError struct {
	Code int `json:"code"`
	// Feature is the dashboard area the action belongs to.
	Feature string `json:"feature"`
	// Required is the access level the action needs.
	Required string `json:"required"`
}

func NewPermissionError(code int, feature, required string) *PermissionError {
	return &PermissionError{
		Code:     code,
		Feature:  feature,
		Required: required,
	}
}

func (e *PermissionError) Error() string {
	if e.Feature == "" {
		return fmt.Sprintf("%s access required", e.Required)
	}
	return fmt.Sprintf("%s access to %s required", e.Required, e.Feature)
}
