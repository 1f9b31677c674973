package form

import (
	"fmt"
	"reflect"
	"strings"

	"isp-dashboard/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Validator checks form inputs against their struct-tag schema.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a Validator that reports fields by their JSON name and
// understands Number and Secret.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(Number).value()
	}, Number{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(Secret).value()
	}, Secret{})
	return &Validator{v: v}
}

// Validate returns nil when input satisfies its schema, otherwise a collector
// with exactly one error per invalid field.
func (val *Validator) Validate(input any) *errors.ValidationErrorCollector {
	err := val.v.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationErrorCollector().
			Add(errors.NewValidationError(ValidationErrorCode, "", err.Error()))
	}

	collector := errors.NewValidationErrorCollector()
	seen := make(map[string]bool, len(fieldErrs))
	rt := reflect.TypeOf(input)
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		if seen[field] {
			continue
		}
		seen[field] = true
		collector.Add(errors.NewValidationError(ValidationErrorCode, field, message(rt, fe)))
	}
	return collector
}

// Var validates a single value against tag.
func (val *Validator) Var(field string, value any, tag string) *errors.ValidationErrorCollector {
	if err := val.v.Var(value, tag); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return errors.NewValidationErrorCollector().
				Add(errors.NewValidationError(ValidationErrorCode, field, fallback(field, fieldErrs[0].Tag(), fieldErrs[0].Param())))
		}
		return errors.NewValidationErrorCollector().
			Add(errors.NewValidationError(ValidationErrorCode, field, err.Error()))
	}
	return nil
}

func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(rt reflect.Type, fe validator.FieldError) string {
	if sf, ok := structField(rt, fe.StructNamespace()); ok {
		if msg, ok := parseMessages(sf.Tag.Get(tagMessage))[fe.Tag()]; ok {
			return msg
		}
		if label := sf.Tag.Get(tagLabel); label != "" {
			return fallback(label, fe.Tag(), fe.Param())
		}
	}
	return fallback(fe.Field(), fe.Tag(), fe.Param())
}

func structField(rt reflect.Type, namespace string) (reflect.StructField, bool) {
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return reflect.StructField{}, false
	}
	var sf reflect.StructField
	for _, part := range parts[1:] {
		if i := strings.Index(part, "["); i >= 0 {
			part = part[:i]
		}
		for rt.Kind() == reflect.Ptr || rt.Kind() == reflect.Slice {
			rt = rt.Elem()
		}
		if rt.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		f, ok := rt.FieldByName(part)
		if !ok {
			return reflect.StructField{}, false
		}
		sf, rt = f, f.Type
	}
	return sf, true
}

// parseMessages reads `msg:"required=Name is required;min=Must be positive"`.
func parseMessages(tag string) map[string]string {
	out := make(map[string]string)
	if tag == "" {
		return out
	}
	for _, part := range strings.Split(tag, ";") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

func fallback(label, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, strings.ReplaceAll(param, " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email", label)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "len":
		return fmt.Sprintf("%s must be %s characters long", label, param)
	case "latitude", "longitude":
		return fmt.Sprintf("%s must be a valid %s", label, tag)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
