package services

import "errors"

// ErrNotFound marks failures caused by a referenced entity that does not
// exist, e.g. a movie created against an unknown director id. Handlers
// translate it to a 4xx response; anything else surfaces as a 5xx.
var ErrNotFound = errors.New("not found")

// ErrUsernameTaken is returned when registering a username that exists.
var ErrUsernameTaken = errors.New("username already taken")

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = errors.New("invalid username or password")
