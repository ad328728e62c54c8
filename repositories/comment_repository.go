package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogapi/apperrors"
	"blogapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCommentNotFound = apperrors.NotFound("Comment not found")

type CommentStore interface {
	ListByPost(ctx context.Context, postID uint) ([]models.Comment, error)
	GetByID(ctx context.Context, id uint, includes ...Include) (*models.Comment, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, comment *models.Comment, callerID uint) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByPost returns the post's comments oldest first, each with its author.
func (r *CommentRepository) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := applyIncludes(r.db.WithContext(ctx), []Include{IncludeAuthor}).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}
	return comments, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint, includes ...Include) (*models.Comment, error) {
	var comment models.Comment
	err := applyIncludes(r.db.WithContext(ctx), includes).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment %d: %w", id, err)
	}
	return &comment, nil
}

func (r *CommentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("probe comment %d: %w", id, err)
	}
	return count > 0, nil
}

// Create stamps callerID as the author. The parent post must exist; the foreign key
// rejects the insert otherwise and that surfaces as ErrPostNotFound.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment, callerID uint) (*models.Comment, error) {
	comment.ID = 0
	comment.UserID = callerID
	comment.UpdatedAt = nil

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return r.GetByID(ctx, comment.ID, IncludeAuthor)
}

// Update overwrites the content and stamps the update time. Author and parent post stay as created.
func (r *CommentRepository) Update(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	now := time.Now().UTC()
	comment.UpdatedAt = &now

	res := r.db.WithContext(ctx).
		Model(&models.Comment{ID: comment.ID}).
		Select("Content", "UpdatedAt").
		Updates(&models.Comment{Content: comment.Content, UpdatedAt: comment.UpdatedAt})
	if res.Error != nil {
		return nil, fmt.Errorf("update comment %d: %w", comment.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

// Delete hard deletes the comment. A missing id is not an error.
func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	return nil
}
