package models

import (
	"mime/multipart"
	"time"
)

type Post struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	ImageURL    *string    `json:"image_url"`
	VideoURL    *string    `json:"video_url"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt   *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
	CreatedByID uint       `json:"created_by_id" gorm:"not null;index"`
	CreatedBy   *User      `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	UpdatedByID *uint      `json:"updated_by_id" gorm:"index"`
	UpdatedBy   *User      `json:"updated_by,omitempty" gorm:"foreignKey:UpdatedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Comments    []Comment  `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (p *Post) OwnerID() uint {
	if p == nil {
		return 0
	}
	return p.CreatedByID
}

// CreatePostRequest is bound from a multipart form.
type CreatePostRequest struct {
	Title   string                `form:"title" binding:"required,max=200"`
	Content string                `form:"content" binding:"required"`
	Image   *multipart.FileHeader `form:"image"`
	Video   *multipart.FileHeader `form:"video"`
}

type UpdatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1"`
}

type PostSummary struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	ImageURL     *string    `json:"image_url"`
	VideoURL     *string    `json:"video_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	CreatedByID  uint       `json:"created_by_id"`
	CreatedBy    string     `json:"created_by"`
	UpdatedByID  *uint      `json:"updated_by_id"`
	UpdatedBy    *string    `json:"updated_by"`
	CommentCount int        `json:"comment_count"`
}

type PostResponse struct {
	PostSummary
	Comments []CommentResponse `json:"comments"`
}
