package owner

import "errors"

var ErrInvalidOwner = errors.New("invalid owner id")
