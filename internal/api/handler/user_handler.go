package handler

import (
	"Revu/internal/api/dto"
	"Revu/internal/pkg/response"
	"Revu/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "signup success", user)
}

func (s *UserHandler) Signin(c *gin.Context) {
	var req dto.SigninDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.userSvc.Signin(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "signin success", token)
}

func (s *UserHandler) Signout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := s.userSvc.Signout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "signout success", nil)
}

func (s *UserHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetUint64("user_id")

	if err := s.userSvc.DeleteAccount(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "delete account success", nil)
}
