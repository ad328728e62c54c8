package routes

import (
	"net/http"

	"blogapi/config"
	"blogapi/controllers"
	"blogapi/handlers"
	"blogapi/middleware"
	"blogapi/repositories"
	"blogapi/services"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const uploadsPath = "/uploads"

type Controllers struct {
	Posts    *controllers.PostController
	Comments *controllers.CommentController
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Feed     *handlers.FeedHandler
}

// NewRouter wires repositories, services and controllers onto a fresh gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config, hub *services.HubService) *gin.Engine {
	tokens := utils.NewTokenManagerFromConfig(cfg)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	userService := services.NewUserService(repositories.NewUserRepository(db))
	uploads := services.NewUploadService(cfg.UploadDir, uploadsPath)

	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Logger())
	r.Use(middleware.ErrorHandler())

	SetupRoutes(r, tokens, cfg.MaxUploadBytes(), Controllers{
		Posts:    controllers.NewPostController(postRepo, uploads, hub),
		Comments: controllers.NewCommentController(commentRepo, postRepo, hub),
		Auth:     controllers.NewAuthController(userService, tokens),
		Users:    controllers.NewUserController(userService),
		Feed:     handlers.NewFeedHandler(hub, cfg.CORSOrigins),
	})

	r.Static(uploadsPath, uploads.Dir())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func SetupRoutes(r *gin.Engine, tokens middleware.TokenValidator, maxBody int64, ctl Controllers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.AuthRequired(tokens)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ctl.Auth.Register)
			auth.POST("/login", ctl.Auth.Login)
			auth.GET("/me", requireAuth, ctl.Auth.Me)
		}

		users := api.Group("/users")
		{
			users.GET("/:id", ctl.Users.GetUser)
			users.DELETE("/:id", requireAuth, ctl.Users.DeleteUser)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", ctl.Posts.GetPosts)
			posts.GET("/:id", ctl.Posts.GetPost)
			posts.POST("", requireAuth, middleware.MaxBodySize(maxBody), ctl.Posts.CreatePost)
			posts.PUT("/:id", requireAuth, ctl.Posts.UpdatePost)
			posts.DELETE("/:id", requireAuth, ctl.Posts.DeletePost)
		}

		comments := api.Group("/posts/:id/comments")
		{
			comments.GET("", ctl.Comments.GetComments)
			comments.GET("/:commentId", ctl.Comments.GetComment)
			comments.POST("", requireAuth, ctl.Comments.CreateComment)
			comments.PUT("/:commentId", requireAuth, ctl.Comments.UpdateComment)
			comments.DELETE("/:commentId", requireAuth, ctl.Comments.DeleteComment)
		}

		api.GET("/feed/ws", middleware.OptionalAuth(tokens), ctl.Feed.HandleWebSocket)
	}
}
