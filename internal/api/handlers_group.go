package api

import "Revu/internal/api/handler"

// HandlersGroup bundles every initialized handler for router setup.
type HandlersGroup struct {
	FeedHandler     *handler.FeedHandler
	CommentHandler  *handler.CommentHandler
	ReactionHandler *handler.ReactionHandler
	UploadHandler   *handler.UploadHandler
	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
}
