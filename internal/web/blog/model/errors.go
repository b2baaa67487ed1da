package model

import "github.com/Laisky/errors/v2"

// ErrNotFound indicates the referenced post or bookmark does not exist.
var ErrNotFound = errors.New("not found")

// ErrPermissionDenied indicates the actor lacks the role or ownership
// required for the requested mutation.
var ErrPermissionDenied = errors.New("permission denied")

// ErrValidation indicates required fields are missing or malformed.
var ErrValidation = errors.New("validation failed")

// ErrInvalidTransition indicates a moderation action that the post's
// current status does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")
