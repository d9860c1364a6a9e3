package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrRemoteService = errors.New("remote service error")
)
