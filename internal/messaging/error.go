package messaging

import "errors"

var (
	ErrTemplateNotFound   = errors.New("sms template not found")
	ErrConfigNotFound     = errors.New("sms config not found")
	ErrInvalidPlaceholder = errors.New("invalid template placeholder")
)
