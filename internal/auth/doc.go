// Package auth is the JWT-backed authentication façade named in §6:
// enable_auth(secret), create_token, validate_token. The core never signs
// or verifies tokens itself — golang-jwt/jwt/v4 does that — it only
// consumes the resulting AuthContext, exactly as §1 scopes it.
package auth
