package project

import "errors"

// ErrProjectNotFound signals that no active project matches the ID.
var ErrProjectNotFound = errors.New("project not found")

// ErrNoAccess signals that the requester neither supervises the project nor
// holds the admin role.
var ErrNoAccess = errors.New("no access to this project")
