package model

import "time"

// CommentModel mirrors the 'comments' table. The author relation is loaded
// on reads to annotate comments with the username.
type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	TaskID    uint `gorm:"index;not null"`
	UserID    uint `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
