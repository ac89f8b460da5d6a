package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Context is the AuthContext shape named in §6.
type Context struct {
	Authenticated bool
	UID           string
	Email         string
	Roles         []string
	Exp           int64
}

// Anonymous is the context used when no token was presented.
var Anonymous = Context{}

// claims is the JWT claim set Elkyn issues and accepts.
type claims struct {
	UID   string   `json:"uid"`
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Auth is the authentication façade. A zero-value Auth is "disabled":
// CreateToken/ValidateToken return ErrAuthDisabled, matching §7's
// AuthDisabled error kind.
type Auth struct {
	secret  []byte
	enabled bool
	ttl     time.Duration
}

// New constructs a disabled Auth façade.
func New() *Auth {
	return &Auth{ttl: 24 * time.Hour}
}

// Enable turns on token issuance/verification with the given HMAC
// secret (§6 enable_auth).
func (a *Auth) Enable(secret string) {
	a.secret = []byte(secret)
	a.enabled = true
}

// CreateToken issues a signed token for uid (§6 create_token).
func (a *Auth) CreateToken(uid, email string) (string, error) {
	if !a.enabled {
		return "", ErrAuthDisabled
	}
	now := time.Now()
	c := claims{
		UID:   uid,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := tok.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies tok and returns the resulting AuthContext (§6
// validate_token).
func (a *Auth) ValidateToken(tok string) (Context, error) {
	if !a.enabled {
		return Context{}, ErrAuthDisabled
	}

	var c claims
	_, err := jwt.ParseWithClaims(tok, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		if verr, ok := err.(*jwt.ValidationError); ok && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return Context{}, ErrTokenExpired
		}
		return Context{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	var exp int64
	if c.ExpiresAt != nil {
		exp = c.ExpiresAt.Unix()
	}
	return Context{
		Authenticated: true,
		UID:           c.UID,
		Email:         c.Email,
		Roles:         c.Roles,
		Exp:           exp,
	}, nil
}
