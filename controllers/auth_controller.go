package controllers

import (
	"net/http"

	"blogapi/mappers"
	"blogapi/models"
	"blogapi/services"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	userService *services.UserService
	tokens      *utils.TokenManager
}

func NewAuthController(userService *services.UserService, tokens *utils.TokenManager) *AuthController {
	return &AuthController{
		userService: userService,
		tokens:      tokens,
	}
}

// Register godoc
// @Summary Create an account and get a token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "Account"
// @Success 201 {object} map[string]models.AuthResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	user, err := ac.userService.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	ac.respondWithToken(c, http.StatusCreated, user)
}

// Login godoc
// @Summary Exchange credentials for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]models.AuthResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	user, err := ac.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	ac.respondWithToken(c, http.StatusOK, user)
}

// Me godoc
// @Summary The authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]models.UserResponse
// @Router /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		fail(c, err)
		return
	}

	user, err := ac.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": mappers.UserToResponse(user)})
}

func (ac *AuthController) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := ac.tokens.GenerateJWT(user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(status, gin.H{"data": models.AuthResponse{
		User:  mappers.UserToResponse(user),
		Token: token,
	}})
}
