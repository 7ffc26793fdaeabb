package realtor

import "errors"

var (
	ErrRealtorNotFound = errors.New("realtor not found")
	ErrSlugTaken       = errors.New("slug already taken")
)
