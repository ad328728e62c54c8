// Package mappers converts between stored entities and the request/response shapes of the API.
package mappers

import (
	"strings"

	"blogapi/models"
)

func PostToSummary(post *models.Post) models.PostSummary {
	summary := models.PostSummary{
		ID:           post.ID,
		Title:        post.Title,
		Content:      post.Content,
		ImageURL:     post.ImageURL,
		VideoURL:     post.VideoURL,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
		CreatedByID:  post.CreatedByID,
		CreatedBy:    post.CreatedBy.Name(),
		UpdatedByID:  post.UpdatedByID,
		CommentCount: len(post.Comments),
	}
	if post.UpdatedBy != nil {
		name := post.UpdatedBy.Name()
		summary.UpdatedBy = &name
	}
	return summary
}

func PostsToSummaries(posts []models.Post) []models.PostSummary {
	out := make([]models.PostSummary, 0, len(posts))
	for i := range posts {
		out = append(out, PostToSummary(&posts[i]))
	}
	return out
}

func PostToResponse(post *models.Post) models.PostResponse {
	return models.PostResponse{
		PostSummary: PostToSummary(post),
		Comments:    CommentsToResponses(post.Comments),
	}
}

func CommentToResponse(comment *models.Comment) models.CommentResponse {
	return models.CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		UserID:    comment.UserID,
		User:      comment.User.Name(),
		PostID:    comment.PostID,
	}
}

func CommentsToResponses(comments []models.Comment) []models.CommentResponse {
	out := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, CommentToResponse(&comments[i]))
	}
	return out
}

func UserToResponse(user *models.User) models.UserResponse {
	return models.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
	}
}

// NewPostFromRequest builds an unsaved post. Attachments and ownership are filled in by the caller.
func NewPostFromRequest(req *models.CreatePostRequest) *models.Post {
	return &models.Post{
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
	}
}

// ApplyPostUpdate overwrites the fields present in req.
func ApplyPostUpdate(req *models.UpdatePostRequest, post *models.Post) {
	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
}

func NewCommentFromRequest(req *models.CreateCommentRequest, postID uint) *models.Comment {
	return &models.Comment{
		Content: req.Content,
		PostID:  postID,
	}
}

func ApplyCommentUpdate(req *models.UpdateCommentRequest, comment *models.Comment) {
	if req.Content != nil {
		comment.Content = *req.Content
	}
}
