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

var ErrPostNotFound = apperrors.NotFound("Post not found")

type PostStore interface {
	List(ctx context.Context, page Page, includes ...Include) ([]models.Post, error)
	GetByID(ctx context.Context, id uint, includes ...Include) (*models.Post, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, post *models.Post, callerID uint) (*models.Post, error)
	Update(ctx context.Context, post *models.Post, callerID uint) (*models.Post, error)
	Delete(ctx context.Context, id uint) error
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List returns posts newest first.
func (r *PostRepository) List(ctx context.Context, page Page, includes ...Include) ([]models.Post, error) {
	var posts []models.Post
	tx := applyIncludes(r.db.WithContext(ctx), includes).
		Order("posts.created_at DESC, posts.id DESC")

	if err := page.apply(tx).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uint, includes ...Include) (*models.Post, error) {
	var post models.Post
	err := applyIncludes(r.db.WithContext(ctx), includes).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return &post, nil
}

func (r *PostRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("probe post %d: %w", id, err)
	}
	return count > 0, nil
}

// Create stamps callerID as the creator, inserts the post and returns it with its creator loaded.
func (r *PostRepository) Create(ctx context.Context, post *models.Post, callerID uint) (*models.Post, error) {
	post.ID = 0
	post.CreatedByID = callerID
	post.UpdatedByID = nil
	post.UpdatedAt = nil

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return r.GetByID(ctx, post.ID, IncludeCreator)
}

// Update overwrites the mutable columns and stamps callerID and the current time as last update.
// Creator and creation time are never written.
func (r *PostRepository) Update(ctx context.Context, post *models.Post, callerID uint) (*models.Post, error) {
	now := time.Now().UTC()
	post.UpdatedByID = &callerID
	post.UpdatedAt = &now

	changes := models.Post{
		Title:       post.Title,
		Content:     post.Content,
		ImageURL:    post.ImageURL,
		VideoURL:    post.VideoURL,
		UpdatedAt:   post.UpdatedAt,
		UpdatedByID: post.UpdatedByID,
	}
	res := r.db.WithContext(ctx).
		Model(&models.Post{ID: post.ID}).
		Select("Title", "Content", "ImageURL", "VideoURL", "UpdatedAt", "UpdatedByID").
		Updates(&changes)
	if res.Error != nil {
		return nil, fmt.Errorf("update post %d: %w", post.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Delete removes the post and, through the foreign key, its comments. A missing id is not an error.
func (r *PostRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
