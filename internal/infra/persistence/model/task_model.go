package model

import "time"

// TaskModel mirrors the 'tasks' table. UserID scopes every query; DueDate is
// nullable.
type TaskModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	IsCompleted bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DueDate     *time.Time `gorm:"index"`
	UserID      uint       `gorm:"index;not null"`

	TaskTags []TaskTagModel `gorm:"foreignKey:TaskID"`
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}

// TagModel mirrors the 'tags' table. The unique index on Name is what makes
// get-or-create safe under concurrency: the loser of a race sees a duplicate
// key error and re-reads.
type TagModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// TaskTagModel mirrors the 'task_tags' link table. The composite primary key
// keeps at most one link per (task, tag) pair.
type TaskTagModel struct {
	TaskID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID  uint `gorm:"primaryKey;autoIncrement:false"`

	Tag *TagModel `gorm:"foreignKey:TagID"`
}

// TableName explicitly sets the table name for GORM.
func (TaskTagModel) TableName() string {
	return "task_tags"
}
