package models

import "time"

// Comment is an append-only log entry attached to an idea. Comments are
// never edited or deleted; workflow actions record their rationale here.
type Comment struct {
	CommentID   string    `gorm:"primaryKey;column:comment_id" json:"id"`
	IdeaID      string    `gorm:"column:idea_id;index" json:"idea_id"`
	UserID      string    `gorm:"column:user_id" json:"user_id"`
	Username    string    `gorm:"column:username" json:"username"`
	CommentText string    `gorm:"column:comment_text" json:"comment_text"`
	CreateAt    time.Time `gorm:"column:create_at" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
