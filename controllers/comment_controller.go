package controllers

import (
	"context"
	"fmt"
	"net/http"

	"blogapi/apperrors"
	"blogapi/mappers"
	"blogapi/models"
	"blogapi/repositories"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	comments repositories.CommentStore
	posts    repositories.PostStore
	events   EventPublisher
}

func NewCommentController(comments repositories.CommentStore, posts repositories.PostStore, events EventPublisher) *CommentController {
	return &CommentController{
		comments: comments,
		posts:    posts,
		events:   events,
	}
}

// GetComments godoc
// @Summary List a post's comments
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string][]models.CommentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /posts/{id}/comments [get]
func (cc *CommentController) GetComments(c *gin.Context) {
	postID, ok := cc.existingPost(c)
	if !ok {
		return
	}

	comments, err := cc.comments.ListByPost(c.Request.Context(), postID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": mappers.CommentsToResponses(comments)})
}

// GetComment godoc
// @Summary Get one comment
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} map[string]models.CommentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /posts/{id}/comments/{commentId} [get]
func (cc *CommentController) GetComment(c *gin.Context) {
	postID, ok := cc.existingPost(c)
	if !ok {
		return
	}

	comment, err := cc.commentOfPost(c, postID, repositories.IncludeAuthor)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": mappers.CommentToResponse(comment)})
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param comment body models.CreateCommentRequest true "Comment"
// @Success 201 {object} map[string]models.CommentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /posts/{id}/comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		fail(c, err)
		return
	}

	postID, ok := cc.existingPost(c)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	created, err := cc.comments.Create(c.Request.Context(), mappers.NewCommentFromRequest(&req, postID), userID)
	if err != nil {
		fail(c, err)
		return
	}

	resp := mappers.CommentToResponse(created)
	c.Header("Location", fmt.Sprintf("/api/posts/%d/comments/%d", postID, created.ID))
	c.JSON(http.StatusCreated, gin.H{"data": resp})

	cc.events.Publish(models.EventCommentCreated, resp)
}

// UpdateComment godoc
// @Summary Edit a comment (author only)
// @Tags comments
// @Accept json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Param comment body models.UpdateCommentRequest true "Fields to change"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /posts/{id}/comments/{commentId} [put]
func (cc *CommentController) UpdateComment(c *gin.Context) {
	comment, ok := cc.ownedComment(c)
	if !ok {
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	mappers.ApplyCommentUpdate(&req, comment)
	if _, err := cc.comments.Update(c.Request.Context(), comment); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)

	cc.events.Publish(models.EventCommentUpdated, mappers.CommentToResponse(comment))
}

// DeleteComment godoc
// @Summary Delete a comment (author only)
// @Tags comments
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /posts/{id}/comments/{commentId} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	comment, ok := cc.ownedComment(c)
	if !ok {
		return
	}

	if err := cc.comments.Delete(c.Request.Context(), comment.ID); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)

	cc.events.Publish(models.EventCommentDeleted, models.DeletedEvent{ID: comment.ID, PostID: comment.PostID})
}

// existingPost parses the post id from the path and checks the post exists.
func (cc *CommentController) existingPost(c *gin.Context) (uint, bool) {
	postID, err := parseID(c, "id", "post")
	if err != nil {
		fail(c, err)
		return 0, false
	}

	exists, err := cc.posts.Exists(c.Request.Context(), postID)
	if err != nil {
		fail(c, err)
		return 0, false
	}
	if !exists {
		fail(c, repositories.ErrPostNotFound)
		return 0, false
	}
	return postID, true
}

// commentOfPost loads the comment in the path. A comment that belongs to another post is not found.
func (cc *CommentController) commentOfPost(c *gin.Context, postID uint, includes ...repositories.Include) (*models.Comment, error) {
	commentID, err := parseID(c, "commentId", "comment")
	if err != nil {
		return nil, err
	}
	return loadCommentOfPost(c.Request.Context(), cc.comments, postID, commentID, includes...)
}

func (cc *CommentController) ownedComment(c *gin.Context) (*models.Comment, bool) {
	userID, err := callerID(c)
	if err != nil {
		fail(c, err)
		return nil, false
	}

	postID, ok := cc.existingPost(c)
	if !ok {
		return nil, false
	}

	comment, err := cc.commentOfPost(c, postID, repositories.CommentDetail...)
	if err != nil {
		fail(c, err)
		return nil, false
	}

	if !models.CanMutate(userID, comment) {
		fail(c, apperrors.Forbidden("You can only modify your own comments"))
		return nil, false
	}
	return comment, true
}

func loadCommentOfPost(ctx context.Context, comments repositories.CommentStore, postID, commentID uint, includes ...repositories.Include) (*models.Comment, error) {
	comment, err := comments.GetByID(ctx, commentID, includes...)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, repositories.ErrCommentNotFound
	}
	return comment, nil
}
