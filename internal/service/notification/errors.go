package notification

import "errors"

var ErrUndefinedStatus = errors.New("no handler registered for status")
