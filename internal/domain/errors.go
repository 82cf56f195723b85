package domain

import "errors"

// Policy and workflow rejections. These are deterministic outcomes, not
// transient faults; callers must not retry them. Store-level failures
// (connection errors and the like) are surfaced unchanged alongside these.
var (
	ErrAccessDenied       = errors.New("access denied")
	ErrTrialExpired       = errors.New("free trial expired")
	ErrDuplicateRequest   = errors.New("a pending upgrade request already exists")
	ErrInvalidState       = errors.New("request is not pending")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
