package handler

import (
	"Revu/internal/pkg/response"
	"Revu/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogSvc: catalogSvc,
	}
}

func (s *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := s.catalogSvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "get categories success", categories)
}

func (s *CatalogHandler) ListEstimations(c *gin.Context) {
	estimations, err := s.catalogSvc.ListEstimations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "get estimations success", estimations)
}

func (s *CatalogHandler) ListSymbols(c *gin.Context) {
	symbols, err := s.catalogSvc.ListSymbols(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "get symbols success", symbols)
}
