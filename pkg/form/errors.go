package form

import "errors"

var ErrNotANumber = errors.New("form: not a number")
