package service

import (
	"Revu/internal/model"
	"Revu/internal/repository"
	"context"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListEstimations(ctx context.Context) ([]model.Estimation, error)
	ListSymbols(ctx context.Context) ([]model.Symbol, error)
}

type catalogServiceImpl struct {
	catalogRepo repository.CatalogRepo
}

func NewCatalogService(catalogRepo repository.CatalogRepo) CatalogService {
	return &catalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.catalogRepo.ListCategories(ctx)
}

func (s *catalogServiceImpl) ListEstimations(ctx context.Context) ([]model.Estimation, error) {
	return s.catalogRepo.ListEstimations(ctx)
}

func (s *catalogServiceImpl) ListSymbols(ctx context.Context) ([]model.Symbol, error) {
	return s.catalogRepo.ListSymbols(ctx)
}
