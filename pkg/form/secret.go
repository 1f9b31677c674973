package form

import (
	"bytes"
	"encoding/json"
	"strings"

	"isp-dashboard/pkg/errors"

	"github.com/aarondl/null/v8"
)

// Secret is a password-like field on an edit form. Blank means "keep the
// current value" and is left out of the submitted payload.
type Secret struct {
	null.String
}

// SecretFrom returns a provided Secret.
func SecretFrom(s string) Secret {
	if strings.TrimSpace(s) == "" {
		return Secret{}
	}
	return Secret{null.StringFrom(s)}
}

// UnmarshalJSON treats null and blank strings as not provided.
func (s *Secret) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		s.String = null.String{}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = SecretFrom(str)
	return nil
}

// UnmarshalText parses form-encoded input.
func (s *Secret) UnmarshalText(text []byte) error {
	*s = SecretFrom(string(text))
	return nil
}

// IsZero reports a blank secret, so `omitzero` drops it from payloads.
func (s Secret) IsZero() bool {
	return !s.Valid
}

func (s Secret) value() any {
	if !s.Valid {
		return nil
	}
	v := s.String.String
	return &v
}

// RequireSecret adds msg for field when s was left blank. Secrets are
// optional on edit but required when nothing is stored yet.
func RequireSecret(errs *errors.ValidationErrorCollector, field string, s Secret, msg string) *errors.ValidationErrorCollector {
	if s.Valid {
		return errs
	}
	if errs == nil {
		errs = errors.NewValidationErrorCollector()
	}
	return errs.Add(errors.NewValidationError(ValidationErrorCode, field, msg))
}
