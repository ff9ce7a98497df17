package wire

import (
	"Revu/internal/api"
	"Revu/internal/api/handler"
	"Revu/internal/job"
	"Revu/internal/pkg/storage"
	"Revu/internal/repository"
	"Revu/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components the app runs with.
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Jobs   []job.Job
}

func BuildApplication(db *gorm.DB, store storage.Store) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	fileRepo := repository.NewFileRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	uploadService := service.NewUploadService(db, fileRepo, store)
	postService := service.NewPostService(db, postRepo, reactionRepo, catalogRepo, uploadService)
	commentService := service.NewCommentService(commentRepo, postRepo)
	reactionService := service.NewReactionService(reactionRepo, catalogRepo, postRepo)
	userService := service.NewUserService(db, userRepo, postRepo, commentRepo, reactionRepo, uploadService)
	catalogService := service.NewCatalogService(catalogRepo)

	handlers := &api.HandlersGroup{
		FeedHandler:     handler.NewFeedHandler(postService),
		CommentHandler:  handler.NewCommentHandler(commentService),
		ReactionHandler: handler.NewReactionHandler(reactionService),
		UploadHandler:   handler.NewUploadHandler(uploadService, store),
		UserHandler:     handler.NewUserHandler(userService),
		CatalogHandler:  handler.NewCatalogHandler(catalogService),
	}

	router := api.SetupRouter(handlers)

	jobs := []job.Job{
		job.NewOrphanCleanJob(uploadService),
	}

	return &ApplicationContainer{
		Router: router,
		DB:     db,
		Jobs:   jobs,
	}, nil
}
