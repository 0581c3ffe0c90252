package settings

import "errors"

var errBadFrequency = errors.New("invalid scan frequency")
