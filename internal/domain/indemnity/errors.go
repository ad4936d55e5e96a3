package indemnity

import "errors"

var ErrIndemnityNotFound = errors.New("indemnity record not found")
