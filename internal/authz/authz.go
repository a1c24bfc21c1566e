// Package authz contains the role- and ownership-based permission rules.
// All predicates are pure and total: unknown roles fall back to the
// least-privileged tier, so a bad role denies rather than errors.
package authz

import "teamboard/internal/domain"

// IsElevated returns true for roles with baseline authority over all tasks.
func IsElevated(role domain.Role) bool {
	return role == domain.RoleManager || role == domain.RoleAdmin
}

// CanEditTask returns true if the user may modify the task.
// Managers and admins may edit any task; others only tasks they are
// assigned to or created.
func CanEditTask(user domain.User, task *domain.Task) bool {
	if IsElevated(user.Role) {
		return true
	}
	return user.ID == task.Assignee.ID || user.ID == task.CreatedBy.ID
}

// CanDeleteTask returns true if the user may delete the task.
// Strictly narrower than edit: an assignee who is neither creator nor
// elevated may edit but not delete.
func CanDeleteTask(user domain.User, task *domain.Task) bool {
	if IsElevated(user.Role) {
		return true
	}
	return user.ID == task.CreatedBy.ID
}

// CanEditComment returns true if the user may modify the comment.
// Only the author and admins qualify.
func CanEditComment(user domain.User, comment *domain.Comment) bool {
	if user.Role == domain.RoleAdmin {
		return true
	}
	return user.ID == comment.User.ID
}

// CanDeleteComment returns true if the user may delete the comment.
// Same rule as editing.
func CanDeleteComment(user domain.User, comment *domain.Comment) bool {
	return CanEditComment(user, comment)
}
