package entity

// Tag is a label shared across all users and tasks; only the task-tag link
// is ownership-scoped, through the owning task. Names are case-sensitive
// and unique.
type Tag struct {
	ID   uint
	Name string
}
