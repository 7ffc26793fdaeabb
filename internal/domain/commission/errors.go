package commission

import "errors"

var (
	ErrCommissionNotFound = errors.New("commission not found")
	ErrInvalidTransition  = errors.New("commission status transition not permitted")
)
