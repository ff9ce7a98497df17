package handler

import (
	"Revu/internal/api/dto"
	"Revu/internal/pkg/response"
	"Revu/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	postSvc service.PostService
}

func NewFeedHandler(postSvc service.PostService) *FeedHandler {
	return &FeedHandler{
		postSvc: postSvc,
	}
}

func (s *FeedHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.FeedPublishDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	feed, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "create feed success", feed)
}

func (s *FeedHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.FeedPublishUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	feed, err := s.postSvc.UpdatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "update feed success", feed)
}

func (s *FeedHandler) CreateDraft(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.FeedDraftDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	feed, err := s.postSvc.CreateDraft(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "create temporary feed success", feed)
}

func (s *FeedHandler) UpdateDraft(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.FeedDraftUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	feed, err := s.postSvc.UpdateDraft(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "update temporary feed success", feed)
}

func (s *FeedHandler) GetFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	feed, err := s.postSvc.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "get feed success", feed)
}

func (s *FeedHandler) ListFeeds(c *gin.Context) {
	var listDTO dto.FeedListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	feeds, err := s.postSvc.ListPublished(c.Request.Context(), listDTO.Page, listDTO.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "get feeds success", feeds)
}

func (s *FeedHandler) ListDrafts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	feeds, err := s.postSvc.ListDrafts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "get temporary feeds success", feeds)
}

func (s *FeedHandler) DeleteFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "delete feed success", nil)
}
