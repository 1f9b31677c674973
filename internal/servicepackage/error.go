package servicepackage

import "errors"

var ErrPackageNotFound = errors.New("package not found")
