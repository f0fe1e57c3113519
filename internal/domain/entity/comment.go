package entity

import "time"

// Comment is attached to a task and reachable only through a task the caller
// owns. Username is the author's login name, resolved on read.
type Comment struct {
	ID        uint
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
	TaskID    uint
	UserID    uint // Author; only the author may edit or delete the comment.
	Username  string
}
