package handler

import (
	"Revu/internal/api/dto"
	"Revu/internal/pkg/response"
	"Revu/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	reactionSvc service.ReactionService
}

func NewReactionHandler(reactionSvc service.ReactionService) *ReactionHandler {
	return &ReactionHandler{
		reactionSvc: reactionSvc,
	}
}

func (s *ReactionHandler) React(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ReactionDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.reactionSvc.React(c.Request.Context(), userID, postID, req.SymbolID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "react success", nil)
}

func (s *ReactionHandler) RemoveReaction(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.reactionSvc.RemoveReaction(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "remove reaction success", nil)
}
