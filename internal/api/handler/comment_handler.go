package handler

import (
	"Revu/internal/api/dto"
	"Revu/internal/pkg/response"
	"Revu/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.commentSvc.CreateComment(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "create comment success", nil)
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.commentSvc.ListComments(c.Request.Context(), viewerID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "get comments success", comments)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.commentSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "delete comment success", nil)
}
