package entity

import "time"

// Task is a to-do item owned by exactly one user. Every read and write path
// must filter by (ID, UserID); a task is invisible to every other user.
type Task struct {
	ID          uint
	Title       string
	Description string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DueDate     *time.Time // nil when the task has no deadline.
	UserID      uint       // Owning user.
	Tags        []string   // Names of attached tags, deduplicated per task.
}
