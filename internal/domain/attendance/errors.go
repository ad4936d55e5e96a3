package attendance

import "errors"

var ErrInvalidMonth = errors.New("invalid pay month, expected MM-YYYY")
