package auth

import (
	"errors"
)

var (
	ErrPayloadTooLarge  = errors.New("request payload exceeds maximum supported size")
	ErrMissingAccessKey = errors.New("access key must not be empty")
	ErrMissingSecretKey = errors.New("secret key must not be empty")
)
