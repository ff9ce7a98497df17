package api

import (
	"Revu/internal/api/middleware"
	"Revu/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("/signup", group.UserHandler.Signup)
			userGroup.POST("/signin", group.UserHandler.Signin)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/signout", group.UserHandler.Signout)
				authGroup.DELETE("/signup", group.UserHandler.DeleteAccount)
			}
		}

		feedGroup := apiGroup.Group("/feeds")
		{
			authOptGroup := feedGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.FeedHandler.ListFeeds)
				authOptGroup.GET("/:id", group.FeedHandler.GetFeed)
				authOptGroup.GET("/:id/comments", group.CommentHandler.ListComments)
			}

			authGroup := feedGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/post", group.FeedHandler.CreatePost)
				authGroup.PATCH("/post", group.FeedHandler.UpdatePost)
				authGroup.POST("/temp", group.FeedHandler.CreateDraft)
				authGroup.PATCH("/temp", group.FeedHandler.UpdateDraft)
				authGroup.GET("/temp", group.FeedHandler.ListDrafts)
				authGroup.DELETE("/:id", group.FeedHandler.DeleteFeed)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.POST("", group.CommentHandler.CreateComment)
			commentGroup.DELETE("/:id", group.CommentHandler.DeleteComment)
		}

		symbolGroup := apiGroup.Group("/symbols")
		symbolGroup.Use(middleware.AuthMiddleware())
		{
			symbolGroup.POST("/:postId", group.ReactionHandler.React)
			symbolGroup.DELETE("/:postId", group.ReactionHandler.RemoveReaction)
		}

		uploadGroup := apiGroup.Group("/upload")
		uploadGroup.Use(middleware.AuthMiddleware())
		{
			uploadGroup.POST("", group.UploadHandler.Upload)
		}

		catalogGroup := apiGroup.Group("")
		{
			catalogGroup.GET("/categories", group.CatalogHandler.ListCategories)
			catalogGroup.GET("/estimations", group.CatalogHandler.ListEstimations)
			catalogGroup.GET("/symbols", group.CatalogHandler.ListSymbols)
		}
	}

	return r
}
