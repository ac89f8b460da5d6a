package auth

import "errors"

var (
	// ErrAuthDisabled indicates CreateToken/ValidateToken was called
	// before EnableAuth.
	ErrAuthDisabled = errors.New("auth: authentication not enabled")

	// ErrInvalidToken indicates the token's signature or shape failed
	// verification.
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrTokenExpired indicates the token parsed and verified but its
	// exp claim is in the past.
	ErrTokenExpired = errors.New("auth: token expired")
)
