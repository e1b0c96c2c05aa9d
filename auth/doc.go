// Package auth authenticates API callers: an in-memory user directory with
// bcrypt-hashed passwords, HS256 bearer tokens carrying the user's email, and
// a chi-compatible middleware that rejects requests without a valid token.
package auth
