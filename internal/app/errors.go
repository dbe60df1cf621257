package app

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUserExists       = errors.New("username or email already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrResponseNotFound = errors.New("ai response not found")
	ErrUserHasContent   = errors.New("user still owns posts or ai responses")
	ErrUpstream         = errors.New("upstream completion failed")
)
