package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrSessionPending     = errors.New("session is still resolving")
	ErrSelfRoleChange     = errors.New("cannot change your own role")

	ErrReferralCodeExists   = errors.New("referral code already exists")
	ErrReferralCodeNotFound = errors.New("referral code not found")
)
