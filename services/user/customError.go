package user

import "errors"

// ErrEmailTaken signals that registration used an email that already exists.
var ErrEmailTaken = errors.New("a user with this email already exists")

// ErrInvalidCredentials signals a failed login. The same error covers an
// unknown email and a wrong password so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")
