package admin

import "errors"

var ErrInvalidStatusFilter = errors.New("invalid booking status filter")
