package controllers

import (
	"net/http"

	"blogapi/mappers"
	"blogapi/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUser godoc
// @Summary Public profile of a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]models.UserResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id} [get]
func (uc *UserController) GetUser(c *gin.Context) {
	id, err := parseID(c, "id", "user")
	if err != nil {
		fail(c, err)
		return
	}

	user, err := uc.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": mappers.UserToResponse(user)})
}

// DeleteUser godoc
// @Summary Delete your own account
// @Description Refused with 409 while the account still owns posts or comments.
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		fail(c, err)
		return
	}

	id, err := parseID(c, "id", "user")
	if err != nil {
		fail(c, err)
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), userID, id); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
