package webhook

import "errors"

var (
	ErrInvalidSecret     = errors.New("invalid webhook secret token")
	ErrIPNotAllowed      = errors.New("ip not allowed")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)
