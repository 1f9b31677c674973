package payment

import "errors"

var ErrConfigNotFound = errors.New("payment config not found")
