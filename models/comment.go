package models

import "time"

type Comment struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	PostID    uint       `json:"post_id" gorm:"not null;index"`
	Post      *Post      `json:"post,omitempty" gorm:"foreignKey:PostID"`
}

func (c *Comment) OwnerID() uint {
	if c == nil {
		return 0
	}
	return c.UserID
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content" binding:"omitempty,min=1,max=5000"`
}

type CommentResponse struct {
	ID        uint       `json:"id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	UserID    uint       `json:"user_id"`
	User      string     `json:"user"`
	PostID    uint       `json:"post_id"`
}
