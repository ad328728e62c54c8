package mappers

import (
	"testing"
	"time"

	"blogapi/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPostToResponse(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Hour)
	editorID := uint(1)
	post := &models.Post{
		ID:          10,
		Title:       "A",
		Content:     "B",
		VideoURL:    strPtr("/uploads/v.mp4"),
		CreatedAt:   created,
		UpdatedAt:   &updated,
		CreatedByID: 1,
		CreatedBy:   &models.User{ID: 1, Username: "u1", DisplayName: strPtr("User One")},
		UpdatedByID: &editorID,
		UpdatedBy:   &models.User{ID: 1, Username: "u1"},
		Comments: []models.Comment{
			{ID: 5, Content: "hi", PostID: 10, UserID: 2, User: &models.User{ID: 2, Username: "u2"}, CreatedAt: created},
		},
	}

	resp := PostToResponse(post)

	assert.Equal(t, uint(10), resp.ID)
	assert.Equal(t, "User One", resp.CreatedBy)
	assert.Equal(t, uint(1), resp.CreatedByID)
	assert.Equal(t, "u1", *resp.UpdatedBy)
	assert.Equal(t, &updated, resp.UpdatedAt)
	assert.Nil(t, resp.ImageURL)
	assert.Equal(t, "/uploads/v.mp4", *resp.VideoURL)
	assert.Equal(t, 1, resp.CommentCount)
	assert.Equal(t, []models.CommentResponse{{
		ID: 5, Content: "hi", CreatedAt: created, UserID: 2, User: "u2", PostID: 10,
	}}, resp.Comments)
}

func TestPostToSummaryWithoutRelations(t *testing.T) {
	summary := PostToSummary(&models.Post{ID: 1, Title: "t", CreatedByID: 4})

	assert.Equal(t, "", summary.CreatedBy)
	assert.Nil(t, summary.UpdatedBy)
	assert.Nil(t, summary.UpdatedByID)
	assert.Equal(t, 0, summary.CommentCount)
}

func TestListsAreNeverNull(t *testing.T) {
	assert.NotNil(t, PostsToSummaries(nil))
	assert.NotNil(t, CommentsToResponses(nil))
	assert.NotNil(t, PostToResponse(&models.Post{}).Comments)
}

func TestApplyPostUpdateIsPartial(t *testing.T) {
	post := &models.Post{Title: "old title", Content: "old content"}

	ApplyPostUpdate(&models.UpdatePostRequest{Title: strPtr("  A2 ")}, post)

	assert.Equal(t, "A2", post.Title)
	assert.Equal(t, "old content", post.Content)

	ApplyPostUpdate(&models.UpdatePostRequest{Content: strPtr("new")}, post)
	assert.Equal(t, "A2", post.Title)
	assert.Equal(t, "new", post.Content)
}

func TestCommentMapping(t *testing.T) {
	comment := NewCommentFromRequest(&models.CreateCommentRequest{Content: "first"}, 3)
	assert.Equal(t, uint(3), comment.PostID)
	assert.Zero(t, comment.UserID)

	ApplyCommentUpdate(&models.UpdateCommentRequest{}, comment)
	assert.Equal(t, "first", comment.Content)

	ApplyCommentUpdate(&models.UpdateCommentRequest{Content: strPtr("second")}, comment)
	assert.Equal(t, "second", comment.Content)
}

func TestNewPostFromRequestIgnoresOwnership(t *testing.T) {
	post := NewPostFromRequest(&models.CreatePostRequest{Title: " Hello ", Content: "World"})

	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Content)
	assert.Zero(t, post.CreatedByID)
	assert.Nil(t, post.ImageURL)
}
