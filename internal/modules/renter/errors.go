package renter

import "errors"

var ErrInvalidRenter = errors.New("invalid renter id")
