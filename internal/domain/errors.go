package domain

import "errors"

// Domain errors.
//
// Three families, all terminal for the single call that raised them:
// not-found (referenced entity absent), invalid-argument (structurally
// invalid input), and permission-denied (authorization refused).
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyContent     = errors.New("comment content cannot be empty")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrPermissionDenied = errors.New("permission denied")
)
