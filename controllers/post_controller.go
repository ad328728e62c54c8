package controllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"blogapi/apperrors"
	"blogapi/mappers"
	"blogapi/models"
	"blogapi/repositories"
	"blogapi/services"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	posts   repositories.PostStore
	uploads *services.UploadService
	events  EventPublisher
}

func NewPostController(posts repositories.PostStore, uploads *services.UploadService, events EventPublisher) *PostController {
	return &PostController{
		posts:   posts,
		uploads: uploads,
		events:  events,
	}
}

// GetPosts godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Param limit query int false "Max posts to return"
// @Param offset query int false "Posts to skip"
// @Success 200 {object} map[string][]models.PostSummary
// @Router /posts [get]
func (pc *PostController) GetPosts(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		fail(c, err)
		return
	}

	posts, err := pc.posts.List(c.Request.Context(), page, repositories.PostDetail...)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": mappers.PostsToSummaries(posts)})
}

// GetPost godoc
// @Summary Get a post with its comments
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]models.PostResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /posts/{id} [get]
func (pc *PostController) GetPost(c *gin.Context) {
	id, err := parseID(c, "id", "post")
	if err != nil {
		fail(c, err)
		return
	}

	post, err := pc.posts.GetByID(c.Request.Context(), id, repositories.PostDetail...)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": mappers.PostToResponse(post)})
}

// CreatePost godoc
// @Summary Create a post
// @Description Multipart form. image: JPG, PNG, GIF (max 10MB). video: MP4, MOV (max 50MB).
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param image formData file false "Image attachment"
// @Param video formData file false "Video attachment"
// @Success 201 {object} map[string]models.PostResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	image, video := attachment(req.Image), attachment(req.Video)

	// nothing is written until every attachment passes
	if image != nil {
		if err := pc.uploads.Validate(image, services.ImageRule); err != nil {
			fail(c, err)
			return
		}
	}
	if video != nil {
		if err := pc.uploads.Validate(video, services.VideoRule); err != nil {
			fail(c, err)
			return
		}
	}

	post := mappers.NewPostFromRequest(&req)
	var stored []string

	if image != nil {
		ref, err := pc.uploads.Save(image, services.ImageRule)
		if err != nil {
			pc.removeUploads(stored)
			fail(c, err)
			return
		}
		stored = append(stored, ref)
		post.ImageURL = &ref
	}
	if video != nil {
		ref, err := pc.uploads.Save(video, services.VideoRule)
		if err != nil {
			pc.removeUploads(stored)
			fail(c, err)
			return
		}
		stored = append(stored, ref)
		post.VideoURL = &ref
	}

	created, err := pc.posts.Create(c.Request.Context(), post, userID)
	if err != nil {
		pc.removeUploads(stored)
		fail(c, err)
		return
	}

	resp := mappers.PostToResponse(created)
	c.Header("Location", fmt.Sprintf("/api/posts/%d", created.ID))
	c.JSON(http.StatusCreated, gin.H{"data": resp})

	pc.events.Publish(models.EventPostCreated, resp.PostSummary)
}

// UpdatePost godoc
// @Summary Update a post (owner only)
// @Tags posts
// @Accept json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param post body models.UpdatePostRequest true "Fields to change"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /posts/{id} [put]
func (pc *PostController) UpdatePost(c *gin.Context) {
	post, userID, ok := pc.ownedPost(c, repositories.IncludeCreator, repositories.IncludeComments)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	mappers.ApplyPostUpdate(&req, post)
	if _, err := pc.posts.Update(c.Request.Context(), post, userID); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)

	// only the creator may update, so the creator is the updater
	post.UpdatedBy = post.CreatedBy
	summary := mappers.PostToSummary(post)
	pc.events.Publish(models.EventPostUpdated, summary)
}

// DeletePost godoc
// @Summary Delete a post and its comments (owner only)
// @Tags posts
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	post, _, ok := pc.ownedPost(c)
	if !ok {
		return
	}

	if err := pc.posts.Delete(c.Request.Context(), post.ID); err != nil {
		fail(c, err)
		return
	}

	var media []string
	for _, ref := range []*string{post.ImageURL, post.VideoURL} {
		if ref != nil {
			media = append(media, *ref)
		}
	}
	pc.removeUploads(media)

	c.Status(http.StatusNoContent)

	pc.events.Publish(models.EventPostDeleted, models.DeletedEvent{ID: post.ID})
}

// ownedPost loads the post named in the path and checks the caller owns it.
// It writes the failure itself and reports ok=false when the request must stop.
func (pc *PostController) ownedPost(c *gin.Context, includes ...repositories.Include) (*models.Post, uint, bool) {
	userID, err := callerID(c)
	if err != nil {
		fail(c, err)
		return nil, 0, false
	}

	id, err := parseID(c, "id", "post")
	if err != nil {
		fail(c, err)
		return nil, 0, false
	}

	post, err := pc.posts.GetByID(c.Request.Context(), id, includes...)
	if err != nil {
		fail(c, err)
		return nil, 0, false
	}

	if !models.CanMutate(userID, post) {
		fail(c, apperrors.Forbidden("You can only modify your own posts"))
		return nil, 0, false
	}

	return post, userID, true
}

func (pc *PostController) removeUploads(refs []string) {
	for _, ref := range refs {
		if err := pc.uploads.Remove(ref); err != nil {
			log.Printf("Failed to remove upload %s: %v", ref, err)
		}
	}
}

// attachment treats an empty file field as no file.
func attachment(file *multipart.FileHeader) *multipart.FileHeader {
	if file == nil || file.Size == 0 {
		return nil
	}
	return file
}

func parsePage(c *gin.Context) (repositories.Page, error) {
	var page repositories.Page
	var err error

	if raw := c.Query("limit"); raw != "" {
		if page.Limit, err = strconv.Atoi(raw); err != nil || page.Limit < 0 {
			return page, apperrors.Validation("Invalid limit", nil)
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if page.Offset, err = strconv.Atoi(raw); err != nil || page.Offset < 0 {
			return page, apperrors.Validation("Invalid offset", nil)
		}
	}
	return page, nil
}
